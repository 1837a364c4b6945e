// Package charts fetches per-player chart series from the stats backend.
//
// The block renderer consumes the Fetcher interface; the HTTP client here
// is one implementation. Each fetch is independent: failures surface as
// plain errors and the caller localizes them to a single block.
package charts

import (
	"context"
	"errors"
	"strings"
)

// Chart types supported by the block renderer.
const (
	TypeMatchCard = "match_card"
	TypeRadar     = "radar"
	TypeBar       = "bar"
	TypeLine      = "line"
	TypeStatTable = "stat_table"
)

// RangeWeek selects the caller-supplied week boundaries instead of a
// fixed period.
const RangeWeek = "week"

// ErrNoData indicates the backend had no series for the requested params.
var ErrNoData = errors.New("no chart data for player")

// Params identify one chart data request.
type Params struct {
	PlayerID  string
	ChartType string
	StatKeys  []string
	DateRange string
	// WeekStart and WeekEnd are ISO dates, set by the caller when
	// DateRange is "week".
	WeekStart string
	WeekEnd   string
}

// CacheKey is stable across equivalent requests and safe as a redis key.
func (p Params) CacheKey() string {
	return strings.Join([]string{
		"charts", p.PlayerID, p.ChartType, strings.Join(p.StatKeys, "+"),
		p.DateRange, p.WeekStart, p.WeekEnd,
	}, ":")
}

// Series is one named sequence of values aligned with Data.Labels.
type Series struct {
	Name   string    `json:"name"`
	Points []float64 `json:"points"`
}

// MatchSummary backs the match_card chart type.
type MatchSummary struct {
	Opponent    string `json:"opponent"`
	Home        bool   `json:"home"`
	Result      string `json:"result,omitempty"`
	TeamScore   int    `json:"teamScore"`
	OppScore    int    `json:"oppScore"`
	Competition string `json:"competition,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Data is the fetched chart payload.
type Data struct {
	Labels  []string       `json:"labels,omitempty"`
	Series  []Series       `json:"series,omitempty"`
	Matches []MatchSummary `json:"matches,omitempty"`
}

// Empty reports whether the payload carries nothing renderable.
func (d *Data) Empty() bool {
	return d == nil || (len(d.Series) == 0 && len(d.Matches) == 0)
}

// Fetcher retrieves chart data. Implementations must be safe for
// concurrent use; the renderer fetches sibling blocks in parallel.
type Fetcher interface {
	Fetch(ctx context.Context, params Params) (*Data, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, params Params) (*Data, error)

func (f FetcherFunc) Fetch(ctx context.Context, params Params) (*Data, error) {
	return f(ctx, params)
}
