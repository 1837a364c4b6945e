package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/newsletter"
	"github.com/fieldside/loanwatch/internal/platform/observability"
	"github.com/fieldside/loanwatch/internal/render/statfmt"
)

// Drafter fills in missing week summaries on a newsletter document.
type Drafter struct {
	client Client
	logger zerolog.Logger
}

func NewDrafter(client Client, logger zerolog.Logger) *Drafter {
	return &Drafter{client: client, logger: logger.With().Str("component", "drafter").Logger()}
}

// DraftMissingSummaries returns a copy of the document with empty week
// summaries replaced by drafted copy. Items that already carry a
// summary are never rewritten. A drafting failure for one item leaves
// that item untouched and the rest proceed.
func (d *Drafter) DraftMissingSummaries(ctx context.Context, doc *newsletter.Document) (*newsletter.Document, error) {
	out, err := cloneDocument(doc)
	if err != nil {
		return nil, err
	}

	for si := range out.Sections {
		for ii := range out.Sections[si].Items {
			item := &out.Sections[si].Items[ii]
			if item.WeekSummary != "" || item.PlayerName == "" {
				continue
			}

			summary, err := d.client.DraftWeekSummary(ctx, draftInputFor(item))
			if err != nil {
				observability.SummaryDrafts.WithLabelValues(observability.OutcomeError).Inc()
				d.logger.Warn().Str("player", item.PlayerName).Err(err).Msg("draft week summary")

				continue
			}

			observability.SummaryDrafts.WithLabelValues(observability.OutcomeOK).Inc()
			item.WeekSummary = summary
		}
	}

	return out, nil
}

func draftInputFor(item *newsletter.PlayerItem) DraftInput {
	input := DraftInput{
		PlayerName: item.PlayerName,
		LoanTeam:   item.LoanTeam,
		StatsLine:  statfmt.Line(item.Stats),
	}

	for _, m := range item.Matches {
		venue := "A"
		if m.Home {
			venue = "H"
		}

		line := fmt.Sprintf("%s (%s)", m.Opponent, venue)
		if m.Score != nil {
			line += fmt.Sprintf(" %d-%d", m.Score.Home, m.Score.Away)
		}

		input.Matches = append(input.Matches, line)
	}

	return input
}

func cloneDocument(doc *newsletter.Document) (*newsletter.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}

	var out newsletter.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone document: %w", err)
	}

	return &out, nil
}
