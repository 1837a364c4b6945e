// Package feeds ingests RSS and Atom feeds and attaches matching
// entries to tracked players as candidate links.
package feeds

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/platform/observability"
	"github.com/fieldside/loanwatch/internal/render/linkfmt"
	"github.com/fieldside/loanwatch/internal/storage"
)

// Store is the slice of storage the collector needs.
type Store interface {
	ListPlayers(ctx context.Context) ([]storage.Player, error)
	UpsertPlayerLink(ctx context.Context, l *storage.PlayerLink) error
}

// Collector polls a set of feeds and matches entries against the
// tracked player roster by name.
type Collector struct {
	parser   *gofeed.Parser
	store    Store
	feedURLs []string
	interval time.Duration
	logger   zerolog.Logger
}

func NewCollector(store Store, feedURLs []string, interval time.Duration, logger zerolog.Logger) *Collector {
	return &Collector{
		parser:   gofeed.NewParser(),
		store:    store,
		feedURLs: feedURLs,
		interval: interval,
		logger:   logger.With().Str("component", "feeds").Logger(),
	}
}

// Run polls all configured feeds until the context is cancelled.
func (c *Collector) Run(ctx context.Context) {
	if len(c.feedURLs) == 0 {
		c.logger.Info().Msg("no feeds configured, collector idle")
		<-ctx.Done()

		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.CollectOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.CollectOnce(ctx)
		}
	}
}

// CollectOnce fetches every feed once and stores matched entries. Feed
// failures are logged and skipped so one dead feed never stalls the rest.
func (c *Collector) CollectOnce(ctx context.Context) {
	players, err := c.store.ListPlayers(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("list players for feed matching")

		return
	}

	if len(players) == 0 {
		return
	}

	for _, feedURL := range c.feedURLs {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			c.logger.Warn().Str("feed", feedURL).Err(err).Msg("parse feed")

			continue
		}

		matched := c.matchFeed(ctx, feed, players)
		if matched > 0 {
			observability.FeedEntriesMatched.WithLabelValues(feed.Title).Add(float64(matched))
			c.logger.Info().Str("feed", feed.Title).Int("matched", matched).Msg("feed entries matched")
		}
	}
}

func (c *Collector) matchFeed(ctx context.Context, feed *gofeed.Feed, players []storage.Player) int {
	matched := 0

	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		player, ok := matchPlayer(item, players)
		if !ok {
			continue
		}

		link := &storage.PlayerLink{
			PlayerID:    player.ID,
			URL:         item.Link,
			Title:       strings.TrimSpace(item.Title),
			Kind:        classify(item.Link),
			PublishedAt: item.PublishedParsed,
		}

		if err := c.store.UpsertPlayerLink(ctx, link); err != nil {
			c.logger.Error().Str("url", item.Link).Err(err).Msg("store matched link")

			continue
		}

		matched++
	}

	return matched
}

// matchPlayer returns the first tracked player whose full name appears
// in the entry title or description.
func matchPlayer(item *gofeed.Item, players []storage.Player) (storage.Player, bool) {
	haystack := strings.ToLower(item.Title + " " + item.Description)

	for _, p := range players {
		if p.Name == "" {
			continue
		}

		if strings.Contains(haystack, strings.ToLower(p.Name)) {
			return p, true
		}
	}

	return storage.Player{}, false
}

func classify(rawURL string) string {
	if linkfmt.IsVideo(rawURL) {
		return storage.LinkKindVideo
	}

	return storage.LinkKindArticle
}
