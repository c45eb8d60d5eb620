// Package views renders the card form markup. Templates are plain
// html/template files exposed as templ components.
package views
