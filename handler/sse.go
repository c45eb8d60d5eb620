package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is the context of a long-lived DataStar event stream.
type StreamContext interface {
	Context
	SendComponent(component templ.Component, opts ...TemplOption) error
	SendMultiple(patches ...TemplPatch) error
	// SendSignals patches the client signal store with the JSON encoding of
	// signals, typically a struct or map.
	SendSignals(signals any) error
}

// StreamFunc runs for the lifetime of the stream. Returning ends it.
type StreamFunc func(ctx StreamContext) error

type sseResponse struct {
	fn StreamFunc
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := &httpContext{w: w, r: r}
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.fn(&streamContext{Context: base, sse: sse})
}

// SSE opens an event stream and hands it to fn.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case v := <-updates:
//				if err := stream.SendSignals(v); err != nil {
//					return err
//				}
//			}
//		}
//	})
func SSE(fn StreamFunc) Response {
	return sseResponse{fn: fn}
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals any) error {
	return c.sse.MarshalAndPatchSignals(signals)
}
