package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

const Index = "index.html"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{
				"selected": func(a, b string) template.HTMLAttr {
					if a == b {
						return "selected"
					}
					return ""
				},
			}).
			ParseFS(files, "templates/*.html"),
	)
}
