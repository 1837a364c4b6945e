package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// Newsletter is one stored weekly issue. Content holds the structured
// document (or its envelope) as it arrived from the composer; Blocks
// optionally holds the in-app block list.
type Newsletter struct {
	ID            uuid.UUID
	WeekStart     time.Time
	WeekEnd       time.Time
	Title         string
	Content       []byte
	Blocks        []byte
	MarkdownCache string
	Published     bool
	CreatedAt     time.Time
}

// InsertNewsletter stores a new issue and returns its id.
func (db *DB) InsertNewsletter(ctx context.Context, n *Newsletter) (uuid.UUID, error) {
	var id uuid.UUID

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO newsletters (week_start, week_end, title, content, blocks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		n.WeekStart, n.WeekEnd, n.Title, n.Content, nullableBytes(n.Blocks),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert newsletter: %w", err)
	}

	return id, nil
}

// GetNewsletter loads one issue by id.
func (db *DB) GetNewsletter(ctx context.Context, id uuid.UUID) (*Newsletter, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, week_start, week_end, title, content, COALESCE(blocks, 'null'::jsonb),
		       COALESCE(markdown_cache, ''), published, created_at
		FROM newsletters WHERE id = $1`, id)

	return scanNewsletter(row)
}

// LatestNewsletter loads the most recent issue by week end.
func (db *DB) LatestNewsletter(ctx context.Context) (*Newsletter, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, week_start, week_end, title, content, COALESCE(blocks, 'null'::jsonb),
		       COALESCE(markdown_cache, ''), published, created_at
		FROM newsletters ORDER BY week_end DESC, created_at DESC LIMIT 1`)

	return scanNewsletter(row)
}

// ListNewsletters returns recent issues, newest first, without content
// payloads.
func (db *DB) ListNewsletters(ctx context.Context, limit int) ([]Newsletter, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, week_start, week_end, title, published, created_at
		FROM newsletters ORDER BY week_end DESC, created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}
	defer rows.Close()

	var list []Newsletter

	for rows.Next() {
		var n Newsletter
		if err := rows.Scan(&n.ID, &n.WeekStart, &n.WeekEnd, &n.Title, &n.Published, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan newsletter: %w", err)
		}

		list = append(list, n)
	}

	return list, rows.Err()
}

// SaveMarkdownCache stores the rendered markdown for an issue.
func (db *DB) SaveMarkdownCache(ctx context.Context, id uuid.UUID, markdown string) error {
	if _, err := db.Pool.Exec(ctx,
		`UPDATE newsletters SET markdown_cache = $2 WHERE id = $1`, id, markdown); err != nil {
		return fmt.Errorf("save markdown cache: %w", err)
	}

	return nil
}

// MarkPublished flags an issue as published.
func (db *DB) MarkPublished(ctx context.Context, id uuid.UUID) error {
	if _, err := db.Pool.Exec(ctx,
		`UPDATE newsletters SET published = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}

	return nil
}

func scanNewsletter(row pgx.Row) (*Newsletter, error) {
	var n Newsletter

	err := row.Scan(&n.ID, &n.WeekStart, &n.WeekEnd, &n.Title, &n.Content, &n.Blocks,
		&n.MarkdownCache, &n.Published, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("scan newsletter: %w", err)
	}

	if string(n.Blocks) == "null" {
		n.Blocks = nil
	}

	return &n, nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return b
}
