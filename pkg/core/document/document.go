// Package document lays out the usage record and management report sheets and prints them to PDF.
package document

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"
)

const MimePDF = "application/pdf"

type Field struct {
	Label string
	Value string
}

// Document is one printable sheet: a header block, a key/value section and a table.
type Document struct {
	Title       string
	Subtitle    string
	Institution string
	Meta        []Field
	Columns     []string
	Rows        [][]string
	// BlankRows pads the table with empty lines to be filled in by hand.
	BlankRows   int
	Signatures  []string
	GeneratedAt time.Time
}

type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

// Renderer prints a document.
type Renderer interface {
	Render(ctx context.Context, doc *Document) (*Result, error)
}

var sheet = template.Must(template.New("sheet").Funcs(template.FuncMap{
	"blank": func(n int) []struct{} { return make([]struct{}, n) },
	"date":  func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4 landscape; margin: 12mm; }
body { font-family: "DejaVu Sans", Arial, sans-serif; font-size: 10pt; color: #111; }
header { border-bottom: 2px solid #333; margin-bottom: 8px; }
header .institution { font-size: 9pt; color: #555; }
h1 { font-size: 16pt; margin: 4px 0; }
h2 { font-size: 11pt; font-weight: normal; margin: 0 0 6px 0; }
dl { display: grid; grid-template-columns: max-content auto; gap: 2px 12px; margin: 8px 0; }
dt { font-weight: bold; }
dd { margin: 0; }
table { width: 100%; border-collapse: collapse; margin-top: 8px; }
th, td { border: 1px solid #666; padding: 3px 5px; text-align: left; vertical-align: top; }
th { background: #eee; }
td.blank { height: 18px; }
.signatures { display: flex; gap: 40px; margin-top: 28px; }
.signatures div { border-top: 1px solid #333; padding-top: 2px; min-width: 200px; }
footer { margin-top: 12px; font-size: 8pt; color: #777; }
</style>
</head>
<body>
<header>
{{- if .Institution}}<div class="institution">{{.Institution}}</div>{{end}}
<h1>{{.Title}}</h1>
{{- if .Subtitle}}<h2>{{.Subtitle}}</h2>{{end}}
</header>
{{- if .Meta}}
<dl>
{{- range .Meta}}<dt>{{.Label}}</dt><dd>{{.Value}}</dd>{{end}}
</dl>
{{- end}}
{{- if .Columns}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
{{- $cols := .Columns}}
{{- range blank .BlankRows}}<tr>{{range $cols}}<td class="blank"></td>{{end}}</tr>{{end}}
</tbody>
</table>
{{- end}}
{{- if .Signatures}}
<div class="signatures">{{range .Signatures}}<div>{{.}}</div>{{end}}</div>
{{- end}}
<footer>Generated {{date .GeneratedAt}}</footer>
</body>
</html>
`))

// HTML lays the document out as a standalone page.
func HTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := sheet.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename derives a safe file name from the document title.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	name := b.String()
	if len(name) > 80 {
		name = name[:80]
	}
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}
