package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NewsletterRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_newsletter_renders_total",
		Help: "The total number of newsletter renders by variant",
	}, []string{"variant"})

	NewsletterRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "loanwatch_newsletter_render_duration_seconds",
		Help:    "Duration of newsletter render calls",
		Buckets: prometheus.DefBuckets,
	})

	ChartFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_chart_fetches_total",
		Help: "The total number of chart data fetches by outcome",
	}, []string{"outcome"})

	FeedEntriesMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_feed_entries_matched_total",
		Help: "The total number of feed entries matched to tracked players",
	}, []string{"feed"})

	LinkResolves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_link_resolves_total",
		Help: "The total number of link title resolutions by outcome",
	}, []string{"outcome"})

	Publishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_publishes_total",
		Help: "The total number of newsletter publishes by outcome",
	}, []string{"outcome"})

	SummaryDrafts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanwatch_summary_drafts_total",
		Help: "The total number of LLM summary drafts by outcome",
	}, []string{"outcome"})
)

// Outcome label values shared by the counters above.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeCache = "cache_hit"
	OutcomeEmpty = "empty"
)
