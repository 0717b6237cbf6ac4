// Package rendering assembles LLM-written HTML fragments into a printable page.
package rendering

import (
	"bytes"
	"html/template"
	"strings"
)

// Document is one printable page.
type Document struct {
	Title string
	Lang  string
	// CSS is trusted stylesheet text from the embedded styles.
	CSS string
	// Body fragments are emitted in order without escaping.
	Body []template.HTML
}

const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
{{.CSS}}
</style>
</head>
<body>
<main class="document">
{{- range .Body}}
{{.}}
{{- end}}
</main>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title string
	Lang  string
	CSS   template.CSS
	Body  []template.HTML
}

// RenderDocument returns the full HTML page for doc.
func RenderDocument(doc Document) (string, error) {
	if len(doc.Body) == 0 {
		return "", &RenderError{Title: doc.Title, Reason: "document has no content"}
	}
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Title: doc.Title,
		Lang:  lang,
		CSS:   template.CSS(doc.CSS),
		Body:  doc.Body,
	})
	if err != nil {
		return "", &RenderError{Title: doc.Title, Reason: "page template failed", Cause: err}
	}
	return buf.String(), nil
}

// Fragments converts cleaned fragment strings, skipping empty ones.
func Fragments(parts ...string) []template.HTML {
	out := make([]template.HTML, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, template.HTML(p))
		}
	}
	return out
}
