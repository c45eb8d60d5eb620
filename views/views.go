package views

import (
	"embed"
	"encoding/json"
	"html/template"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cardform/handler"
	"github.com/dmitrymomot/cardform/modules/cardinput"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"first": func(msgs []string) string {
		if len(msgs) == 0 {
			return ""
		}
		return msgs[0]
	},
}).ParseFS(files, "templates/*.html"))

// DataStarScript is the client bundle loaded by every page.
const DataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

type pageData struct {
	Title       string
	Script      string
	SignalsJSON string
	cardinput.PageParams
}

// CardPage renders the card form page.
func CardPage(p cardinput.PageParams) templ.Component {
	signals, err := json.Marshal(struct {
		cardinput.Signals
		Holder string `json:"ccHolder"`
		Number string `json:"ccNumber"`
		CVV    string `json:"ccCVV"`
	}{Signals: p.Signals, Holder: p.Holder})
	if err != nil {
		signals = []byte("{}")
	}
	return templ.FromGoHTML(templates.Lookup("page.html"), pageData{
		Title:       "Card details",
		Script:      DataStarScript,
		SignalsJSON: string(signals),
		PageParams:  p,
	})
}

// Toast renders a notification prepended to #toast-container.
func Toast(p cardinput.ToastParams) templ.Component {
	return templ.FromGoHTML(templates.Lookup("toast.html"), p)
}

// ErrorPage renders a full page for request errors.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.FromGoHTML(templates.Lookup("error.html"), struct {
		Title  string
		Script string
		handler.ErrorPageParams
	}{Title: "Error", Script: DataStarScript, ErrorPageParams: p})
}

// ErrorToast renders request errors raised during DataStar actions.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.FromGoHTML(templates.Lookup("toast.html"), cardinput.ToastParams{Type: p.Type, Message: p.Message})
}

// CardInput returns the views of the cardinput module.
func CardInput() *cardinput.Views {
	return &cardinput.Views{Page: CardPage, Toast: Toast}
}

// ErrorHandlerConfig wires the error views into handler.NewErrorHandler.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{ErrorPage: ErrorPage, ErrorToast: ErrorToast}
}
