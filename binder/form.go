package binder

import (
	"fmt"
	"mime"
	"net/http"
)

const maxMemory = 1 << 20

// Form binds urlencoded and multipart form bodies using `form` struct tags.
// Requests with any other content type are not applicable, which lets a
// handler accept both plain HTML form posts and DataStar signal posts.
//
//	type SubmitRequest struct {
//		Number string `form:"ccNumber"`
//	}
//
//	r.Post("/submit", handler.Wrap(h, handler.WithBinders[handler.Context, SubmitRequest](
//		binder.Signals(), binder.Form(),
//	)))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return ErrBinderNotApplicable
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			err = r.ParseForm()
		case "multipart/form-data":
			err = r.ParseMultipartForm(maxMemory)
		default:
			return ErrBinderNotApplicable
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", func(name string) (string, bool) {
			values, ok := r.Form[name]
			if !ok || len(values) == 0 {
				return "", false
			}
			return values[0], true
		}, ErrInvalidForm)
	}
}
