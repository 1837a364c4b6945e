package linkresolver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/platform/observability"
	"github.com/fieldside/loanwatch/internal/render/linkfmt"
	"github.com/fieldside/loanwatch/internal/storage"
)

// Resolved is a URL enriched with a title and classification.
type Resolved struct {
	URL         string
	Title       string
	Kind        string
	PublishedAt time.Time
}

// Resolver fetches pages and turns bare URLs into titled links.
type Resolver struct {
	fetcher *WebFetcher
	logger  zerolog.Logger
}

func NewResolver(fetcher *WebFetcher, logger zerolog.Logger) *Resolver {
	return &Resolver{fetcher: fetcher, logger: logger.With().Str("component", "linkresolver").Logger()}
}

// Resolve fetches rawURL and extracts its title and publish date. The
// classification never requires a fetch, so video links from hosts that
// block scrapers still come back usable.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*Resolved, error) {
	kind := storage.LinkKindArticle
	if linkfmt.IsVideo(rawURL) {
		kind = storage.LinkKindVideo
	}

	body, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		observability.LinkResolves.WithLabelValues(observability.OutcomeError).Inc()

		if kind == storage.LinkKindVideo {
			r.logger.Debug().Str("url", rawURL).Err(err).Msg("video page fetch failed, keeping bare link")

			return &Resolved{URL: rawURL, Kind: kind}, nil
		}

		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	observability.LinkResolves.WithLabelValues(observability.OutcomeOK).Inc()

	info := ExtractPageInfo(body, rawURL)

	return &Resolved{
		URL:         rawURL,
		Title:       info.Title,
		Kind:        kind,
		PublishedAt: info.PublishedAt,
	}, nil
}
