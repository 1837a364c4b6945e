package httpapi

import (
	"html/template"
	"strings"
)

type pageData struct {
	Title string
	Brand string
	Body  template.HTML
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body class="nl-page">
<header class="nl-header"><span class="nl-brand">{{.Brand}}</span></header>
<main class="nl-body">
{{.Body}}
</main>
</body>
</html>
`))

var fallbackTmpl = template.Must(template.New("fallback").Parse(`<pre class="nl-markdown">{{.}}</pre>`))

// markdownFallback wraps rendered markdown for issues stored without a
// block list. The text is escaped by the template engine; only the
// wrapper carries markup.
func markdownFallback(md string) template.HTML {
	var sb strings.Builder

	_ = fallbackTmpl.Execute(&sb, md)

	return template.HTML(sb.String())
}
