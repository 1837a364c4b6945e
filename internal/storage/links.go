package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Link kinds, mirrored by the link formatter's icon classification.
const (
	LinkKindArticle = "article"
	LinkKindVideo   = "video"
)

// PlayerLink is a resolved article or video attached to a player.
type PlayerLink struct {
	ID          uuid.UUID
	PlayerID    uuid.UUID
	URL         string
	Title       string
	Kind        string
	PublishedAt *time.Time
	CreatedAt   time.Time
}

// UpsertPlayerLink stores a candidate link; re-ingesting the same URL for
// a player refreshes the title instead of duplicating the row.
func (db *DB) UpsertPlayerLink(ctx context.Context, l *PlayerLink) error {
	if _, err := db.Pool.Exec(ctx, `
		INSERT INTO player_links (player_id, url, title, kind, published_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player_id, url) DO UPDATE
		SET title = EXCLUDED.title, published_at = EXCLUDED.published_at`,
		l.PlayerID, l.URL, l.Title, l.Kind, l.PublishedAt); err != nil {
		return fmt.Errorf("upsert player link: %w", err)
	}

	return nil
}

// ListUntitledPlayerLinks returns links still missing a title, oldest
// first, for the resolver backfill.
func (db *DB) ListUntitledPlayerLinks(ctx context.Context, limit int) ([]PlayerLink, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, player_id, url, title, kind, published_at, created_at
		FROM player_links WHERE title = ''
		ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list untitled links: %w", err)
	}
	defer rows.Close()

	var links []PlayerLink

	for rows.Next() {
		var l PlayerLink
		if err := rows.Scan(&l.ID, &l.PlayerID, &l.URL, &l.Title, &l.Kind, &l.PublishedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player link: %w", err)
		}

		links = append(links, l)
	}

	return links, rows.Err()
}

// UpdatePlayerLinkResolution stores resolver output for a link.
func (db *DB) UpdatePlayerLinkResolution(ctx context.Context, id uuid.UUID, title, kind string, publishedAt *time.Time) error {
	if _, err := db.Pool.Exec(ctx, `
		UPDATE player_links SET title = $2, kind = $3, published_at = COALESCE($4, published_at)
		WHERE id = $1`, id, title, kind, publishedAt); err != nil {
		return fmt.Errorf("update link resolution: %w", err)
	}

	return nil
}

// ListPlayerLinks returns the most recent links for a player.
func (db *DB) ListPlayerLinks(ctx context.Context, playerID uuid.UUID, limit int) ([]PlayerLink, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, player_id, url, title, kind, published_at, created_at
		FROM player_links WHERE player_id = $1
		ORDER BY created_at DESC LIMIT $2`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list player links: %w", err)
	}
	defer rows.Close()

	var links []PlayerLink

	for rows.Next() {
		var l PlayerLink
		if err := rows.Scan(&l.ID, &l.PlayerID, &l.URL, &l.Title, &l.Kind, &l.PublishedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player link: %w", err)
		}

		links = append(links, l)
	}

	return links, rows.Err()
}
