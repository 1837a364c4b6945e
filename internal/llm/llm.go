// Package llm drafts short prose summaries for newsletter items whose
// editors left the week summary blank.
package llm

import (
	"context"
)

// Client generates editorial copy. Implementations must be safe for
// concurrent use.
type Client interface {
	DraftWeekSummary(ctx context.Context, input DraftInput) (string, error)
}

// DraftInput is the material the drafter works from.
type DraftInput struct {
	PlayerName string
	LoanTeam   string
	StatsLine  string
	Matches    []string
}
