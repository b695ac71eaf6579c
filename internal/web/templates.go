package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		// safe marks a string already rendered by the post renderer as
		// trusted markup; everything else goes through auto-escaping.
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
