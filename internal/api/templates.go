package api

import (
	"embed"
	"html/template"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates parses the embedded HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
