package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Player is one tracked loanee.
type Player struct {
	ID            uuid.UUID
	Name          string
	LoanTeam      string
	CanFetchStats bool
	CreatedAt     time.Time
}

// ListPlayers returns all tracked players ordered by name.
func (db *DB) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, loan_team, can_fetch_stats, created_at
		FROM players ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []Player

	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.LoanTeam, &p.CanFetchStats, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}

		players = append(players, p)
	}

	return players, rows.Err()
}

// UpsertPlayer inserts or updates a player keyed by name.
func (db *DB) UpsertPlayer(ctx context.Context, p *Player) (uuid.UUID, error) {
	var id uuid.UUID

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO players (name, loan_team, can_fetch_stats)
		VALUES ($1, $2, $3)
		ON CONFLICT (lower(name)) DO UPDATE
		SET loan_team = EXCLUDED.loan_team, can_fetch_stats = EXCLUDED.can_fetch_stats
		RETURNING id`,
		p.Name, p.LoanTeam, p.CanFetchStats,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert player: %w", err)
	}

	return id, nil
}
