// Package handler provides typed HTTP handlers for DataStar driven pages.
//
// A HandlerFunc receives a Context and a request struct decoded by binders,
// and returns a Response. Responses adapt to the caller: plain requests get
// HTML, DataStar requests get server-sent events that patch elements or
// signals in the page.
//
//	type InputRequest struct {
//		Field string `path:"field"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, InputRequest](
//		func(ctx handler.Context, req InputRequest) handler.Response {
//			return handler.Empty()
//		},
//	)
//	r.Post("/input/{field}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, InputRequest](binder.Path(chi.URLParam)),
//	))
//
// Long-lived streams use SSE with a StreamFunc. Errors from binders and
// responses go through an ErrorHandler; NewErrorHandler renders them as an
// error page or a toast.
package handler
