package blocks

import "html/template"

// fragmentTmpl holds the per-block HTML fragments. html/template's
// contextual escaping covers every interpolated string; only the text
// block injects pre-escaped markup via template.HTML.
var fragmentTmpl = template.Must(template.New("fragments").Parse(`
{{- define "text" -}}
<div class="nl-block nl-text">{{.Content}}</div>
{{- end -}}

{{- define "locked" -}}
<div class="nl-block nl-locked" data-author-id="{{.AuthorID}}">
<p>This analysis is for subscribers{{if .AuthorName}} of {{.AuthorName}}{{end}}.</p>
<button type="button" data-action="subscribe" data-author-id="{{.AuthorID}}">Subscribe to unlock</button>
</div>
{{- end -}}

{{- define "quote" -}}
<figure class="nl-block nl-quote">
<blockquote><p>{{.Text}}</p></blockquote>
<figcaption>{{if .URL}}<a href="{{.URL}}" rel="noopener noreferrer">{{.Attribution}}</a>{{else}}{{.Attribution}}{{end}}{{if .Date}} ({{.Date}}){{end}}</figcaption>
</figure>
{{- end -}}

{{- define "chartError" -}}
<div class="nl-block nl-chart nl-chart-error">Failed to load chart</div>
{{- end -}}

{{- define "chartEmpty" -}}
<div class="nl-block nl-chart nl-chart-empty">No data for this chart yet</div>
{{- end -}}

{{- define "chartUnknown" -}}
<div class="nl-block nl-chart nl-chart-unknown">Unknown chart type: {{.}}</div>
{{- end -}}

{{- define "matchCards" -}}
<div class="nl-block nl-chart nl-match-cards">
{{- range . -}}
<div class="nl-match-card"><span class="result">{{.Emoji}}</span> <span class="opponent">{{.Opponent}} ({{.Venue}})</span> <span class="score">{{.Score}}</span>{{if .Competition}} <span class="competition">{{.Competition}}</span>{{end}}{{if .Date}} <span class="date">{{.Date}}</span>{{end}}</div>
{{- end -}}
</div>
{{- end -}}

{{- define "seriesChart" -}}
<figure class="nl-block nl-chart nl-chart-{{.Kind}}">
{{- range .Series -}}
<div class="nl-series"><h4>{{.Name}}</h4><dl>
{{- range .Rows -}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end -}}
</dl></div>
{{- end -}}
</figure>
{{- end -}}

{{- define "statTable" -}}
<table class="nl-block nl-chart nl-stat-table">
<thead><tr><th></th>{{range .Labels}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows -}}
<tr><th>{{.Name}}</th>{{range .Points}}<td>{{.}}</td>{{end}}</tr>
{{- end -}}
</tbody>
</table>
{{- end -}}
`))
