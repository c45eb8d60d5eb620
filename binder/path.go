package binder

import "net/http"

// Path binds URL path parameters using `path` struct tags. The extractor is
// router specific; with chi pass chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "path", func(name string) (string, bool) {
			value := extractor(r, name)
			return value, value != ""
		}, ErrInvalidPath)
	}
}
