// Package web embeds the HTML templates. Every template file defines its
// page under its path relative to templates/, e.g. "pages/venues.html",
// which is the name handlers pass to gin's c.HTML.
package web

import (
	"embed"
	"html/template"
	"slices"
	"time"
)

//go:embed templates
var files embed.FS

const (
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

// FormatDateTime renders t as "medium" (the default) or "full".
func FormatDateTime(t time.Time, format string) string {
	if format == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

var Funcs = template.FuncMap{
	"datetime": FormatDateTime,
	"contains": func(list []string, s string) bool {
		return slices.Contains(list, s)
	},
}

// Templates parses every embedded template into one set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files,
		"templates/layouts/*.html",
		"templates/pages/*.html",
		"templates/forms/*.html",
		"templates/errors/*.html",
	)
}
