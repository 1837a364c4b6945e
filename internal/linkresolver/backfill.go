package linkresolver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/storage"
)

const backfillBatchSize = 25

// BackfillStore is the slice of storage the backfill needs.
type BackfillStore interface {
	ListUntitledPlayerLinks(ctx context.Context, limit int) ([]storage.PlayerLink, error)
	UpdatePlayerLinkResolution(ctx context.Context, id uuid.UUID, title, kind string, publishedAt *time.Time) error
}

// Backfill resolves titles for stored links that arrived without one.
// Individual failures are logged and skipped.
func Backfill(ctx context.Context, store BackfillStore, resolver *Resolver, logger zerolog.Logger) error {
	links, err := store.ListUntitledPlayerLinks(ctx, backfillBatchSize)
	if err != nil {
		return err
	}

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		resolved, err := resolver.Resolve(ctx, link.URL)
		if err != nil {
			logger.Warn().Str("url", link.URL).Err(err).Msg("resolve link")

			continue
		}

		var publishedAt *time.Time
		if !resolved.PublishedAt.IsZero() {
			t := resolved.PublishedAt
			publishedAt = &t
		}

		if err := store.UpdatePlayerLinkResolution(ctx, link.ID, resolved.Title, resolved.Kind, publishedAt); err != nil {
			logger.Error().Str("url", link.URL).Err(err).Msg("store resolved link")
		}
	}

	return nil
}
