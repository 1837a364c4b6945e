// Package blocks renders typed newsletter content blocks (text, chart,
// quote, divider) into sanitized HTML fragments.
//
// Blocks render independently and in array order. A premium block shown
// to an unsubscribed viewer becomes a locked placeholder and its content
// is never touched; in particular no chart data is fetched for it. Chart
// fetch failures degrade that one block to an inline error fragment and
// never affect siblings.
package blocks

import (
	"context"
	"encoding/json"
	"html/template"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/charts"
	"github.com/fieldside/loanwatch/internal/render/textfmt"
)

// Block types handled by the renderer. Anything else is skipped.
const (
	TypeText    = "text"
	TypeChart   = "chart"
	TypeQuote   = "quote"
	TypeDivider = "divider"
)

// Block is one typed unit of newsletter content.
type Block struct {
	Type      string `json:"type"`
	IsPremium bool   `json:"isPremium,omitempty"`

	// text
	Content string `json:"content,omitempty"`

	// chart
	ChartType   string       `json:"chartType,omitempty"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`

	// quote
	QuoteText      string `json:"quoteText,omitempty"`
	SourceType     string `json:"sourceType,omitempty"`
	SourceName     string `json:"sourceName,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty"`
	SourcePlatform string `json:"sourcePlatform,omitempty"`
	QuoteDate      string `json:"quoteDate,omitempty"` // YYYY-MM
}

// ChartConfig carries the per-block chart parameters.
type ChartConfig struct {
	PlayerID  string   `json:"playerId,omitempty"`
	StatKeys  []string `json:"statKeys,omitempty"`
	DateRange string   `json:"dateRange,omitempty"`
}

// DecodeBlocks parses a stored JSON block list.
func DecodeBlocks(raw []byte) ([]Block, error) {
	var list []Block
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// View is the explicit render context: who is looking and at what week.
// Keeping it a plain value keeps the renderer a pure function of its
// inputs.
type View struct {
	PlayerID     string
	WeekStart    string
	WeekEnd      string
	IsSubscribed bool
	AuthorID     string
	AuthorName   string
	Brand        string
}

const defaultBrand = "Loan Watch"

// Renderer turns block lists into HTML fragments. The chart fetcher is
// injected; the renderer owns no transport.
type Renderer struct {
	fetcher charts.Fetcher
	logger  *zerolog.Logger
}

// NewRenderer builds a Renderer around a chart data fetcher.
func NewRenderer(fetcher charts.Fetcher, logger *zerolog.Logger) *Renderer {
	return &Renderer{fetcher: fetcher, logger: logger}
}

// chartResult is the typed per-block fetch outcome. Each chart block owns
// exactly one slot; failure stays local to it.
type chartResult struct {
	data *charts.Data
	err  error
}

// Render produces the HTML fragment for the whole block list.
func (r *Renderer) Render(ctx context.Context, list []Block, view View) string {
	if view.Brand == "" {
		view.Brand = defaultBrand
	}

	results := r.fetchCharts(ctx, list, view)

	var sb strings.Builder

	for i, b := range list {
		r.renderBlock(&sb, b, view, results[i])
	}

	return sb.String()
}

// fetchCharts resolves data for every renderable chart block
// concurrently. Locked premium charts are never fetched.
func (r *Renderer) fetchCharts(ctx context.Context, list []Block, view View) []chartResult {
	results := make([]chartResult, len(list))

	var wg sync.WaitGroup

	for i, b := range list {
		if b.Type != TypeChart || (b.IsPremium && !view.IsSubscribed) {
			continue
		}

		wg.Add(1)

		go func(idx int, block Block) {
			defer wg.Done()

			data, err := r.fetcher.Fetch(ctx, chartParams(block, view))
			results[idx] = chartResult{data: data, err: err}
		}(i, b)
	}

	wg.Wait()

	return results
}

// chartParams builds the fetch key: the caller-supplied player id wins,
// the block config fills in only when the caller gave none, and a "week"
// range passes the caller's boundaries through.
func chartParams(b Block, view View) charts.Params {
	params := charts.Params{
		PlayerID:  view.PlayerID,
		ChartType: b.ChartType,
	}

	if b.ChartConfig != nil {
		if params.PlayerID == "" {
			params.PlayerID = b.ChartConfig.PlayerID
		}

		params.StatKeys = b.ChartConfig.StatKeys
		params.DateRange = b.ChartConfig.DateRange
	}

	if params.DateRange == charts.RangeWeek {
		params.WeekStart = view.WeekStart
		params.WeekEnd = view.WeekEnd
	}

	return params
}

func (r *Renderer) renderBlock(sb *strings.Builder, b Block, view View, chart chartResult) {
	if b.IsPremium && !view.IsSubscribed {
		r.execute(sb, "locked", lockedData{AuthorID: view.AuthorID, AuthorName: view.AuthorName})
		return
	}

	switch b.Type {
	case TypeText:
		// textfmt escapes all plain text before building markup.
		r.execute(sb, "text", textData{Content: template.HTML(textfmt.ToHTML(b.Content))})
	case TypeDivider:
		sb.WriteString(`<hr class="nl-divider">`)
	case TypeQuote:
		r.execute(sb, "quote", quoteData(b, view.Brand))
	case TypeChart:
		r.renderChart(sb, b, chart)
	default:
		// Unknown block types are silently skipped.
	}
}

// execute runs one named template; a template failure drops the block
// rather than the document.
func (r *Renderer) execute(sb *strings.Builder, name string, data any) {
	if err := fragmentTmpl.ExecuteTemplate(sb, name, data); err != nil && r.logger != nil {
		r.logger.Error().Err(err).Str("fragment", name).Msg("block render failed")
	}
}

type lockedData struct {
	AuthorID   string
	AuthorName string
}

type textData struct {
	Content template.HTML
}
