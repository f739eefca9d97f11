package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var tplFS embed.FS

var tpl = template.Must(template.New("").Funcs(template.FuncMap{
	// Photos are data URIs, which html/template's URL filter would reject.
	// They come from our own upload encoder, not arbitrary markup.
	"safeURL": func(s string) template.URL { return template.URL(s) },
}).ParseFS(tplFS, "templates/*.html"))

type page struct {
	Title string
	CSS   template.CSS
	L     *Layout
}

// HTML emits the print-ready page for a composed layout. This string is
// what the preview endpoint serves and what the PDF renderer paginates.
func HTML(l *Layout) (string, error) {
	name := "cv.html"
	if l.Kind == KindCoverLetter {
		name = "cover_letter.html"
	}
	var buf bytes.Buffer
	data := page{Title: l.Header.Name, CSS: stylesheet(l), L: l}
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
