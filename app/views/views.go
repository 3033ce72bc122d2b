// Package views holds the application's embedded HTML templates.
package views

import (
	"embed"
	"html/template"
)

//go:embed layout.html auth/login.html
var files embed.FS

// Load parses the embedded templates, one entry per page.
func Load() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["login"] = template.Must(template.ParseFS(files,
		"layout.html",
		"auth/login.html",
	))
	return templates
}
