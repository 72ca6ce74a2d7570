// Package web holds the embedded templates of the comparison page.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("page").Funcs(template.FuncMap{
		"bytes": humanBytes,
		"pct":   percent,
	}).ParseFS(templateFS, "templates/*.html"))
}
