package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarHeader is set by the DataStar client on every backend action.
const DataStarHeader = "Datastar-Request"

// Signals decodes the DataStar signal store sent with a backend action into
// v using its `json` tags. GET requests carry signals in the "datastar" query
// parameter, other methods in the JSON body. Requests without the DataStar
// header are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(DataStarHeader) != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
