package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/cardform/binder"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchRemove  = datastar.ElementPatchModeRemove
)

// IsDataStar reports whether the request was issued by the DataStar client
// and expects an event stream back.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(binder.DataStarHeader) == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
