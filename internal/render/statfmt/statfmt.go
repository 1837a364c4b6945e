// Package statfmt renders a player's weekly stat block as a compact
// display line and as an expanded markdown table.
//
// Field absence and zero are different things: a category only renders
// when at least one of its fields is actually present on the block.
package statfmt

import (
	"fmt"
	"strings"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

// Position is the canonical position class used to pick stat categories.
type Position int

const (
	PositionUnknown Position = iota
	PositionGoalkeeper
	PositionDefender
	PositionMidfielder
	PositionForward
)

// NormalizePosition maps both the long form (Goalkeeper, Defender, ...)
// and the short codes (G, D, M, F) onto one canonical class. Everything
// unrecognised falls back to the midfielder/forward treatment.
func NormalizePosition(position string) Position {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case "goalkeeper", "g", "gk":
		return PositionGoalkeeper
	case "defender", "d":
		return PositionDefender
	case "midfielder", "m":
		return PositionMidfielder
	case "forward", "f", "attacker":
		return PositionForward
	default:
		return PositionUnknown
	}
}

// Line formats the compact single-line stat summary, position-aware,
// segments joined with " | ". It always leads with minutes played.
func Line(stats *newsletter.Stats) string {
	if stats == nil {
		return ""
	}

	segments := []string{fmt.Sprintf("%d'", intOrZero(stats.Minutes))}

	switch NormalizePosition(stats.Position) {
	case PositionGoalkeeper:
		if stats.Saves != nil {
			segments = append(segments, fmt.Sprintf("%d saves", *stats.Saves))
		}

		if stats.GoalsConceded != nil {
			segments = append(segments, fmt.Sprintf("%d conceded", *stats.GoalsConceded))
		}
	case PositionDefender:
		if stats.TacklesTotal != nil || stats.TacklesInterceptions != nil {
			segments = append(segments, fmt.Sprintf("%dT %dI",
				intOrZero(stats.TacklesTotal), intOrZero(stats.TacklesInterceptions)))
		}

		if intOrZero(stats.Goals) > 0 || intOrZero(stats.Assists) > 0 {
			segments = append(segments, goalsAssists(stats))
		}
	default:
		segments = append(segments, goalsAssists(stats))

		if stats.PassesKey != nil {
			segments = append(segments, fmt.Sprintf("%d key passes", *stats.PassesKey))
		}

		if stats.ShotsTotal != nil {
			segments = append(segments, fmt.Sprintf("%d shots", *stats.ShotsTotal))
		}
	}

	if stats.Rating != nil {
		segments = append(segments, fmt.Sprintf("⭐ %.1f", *stats.Rating))
	}

	return strings.Join(segments, " | ")
}

// CompactCell is the single-cell stat summary used by the compact table:
// minutes, goals, assists and rating without category breakdown.
func CompactCell(stats *newsletter.Stats) string {
	if stats == nil {
		return ""
	}

	parts := []string{
		fmt.Sprintf("%d'", intOrZero(stats.Minutes)),
		fmt.Sprintf("%dG", intOrZero(stats.Goals)),
		fmt.Sprintf("%dA", intOrZero(stats.Assists)),
	}

	if stats.Rating != nil {
		parts = append(parts, fmt.Sprintf("%.1f", *stats.Rating))
	}

	return strings.Join(parts, " ")
}

// statCategory is one row of the expanded table. Present reports whether
// any of the category's source fields exist on the block.
type statCategory struct {
	name    string
	present bool
	detail  string
}

// Expanded renders the detail table. Categories with no present fields
// are omitted entirely; with nothing to show the result is empty.
func Expanded(stats *newsletter.Stats) string {
	if stats == nil {
		return ""
	}

	categories := []statCategory{
		attackingRow(stats),
		passingRow(stats),
		defendingRow(stats),
		duelsRow(stats),
		goalkeeperRow(stats),
		disciplineRow(stats),
	}

	var rows []string

	for _, c := range categories {
		if c.present {
			rows = append(rows, fmt.Sprintf("| %s | %s |", c.name, c.detail))
		}
	}

	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("| Category | Detail |\n")
	sb.WriteString("| --- | --- |\n")
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteString("\n")

	return sb.String()
}

func attackingRow(s *newsletter.Stats) statCategory {
	var parts []string

	if s.ShotsTotal != nil || s.ShotsOn != nil {
		parts = append(parts, fmt.Sprintf("%d shots (%d on target)",
			intOrZero(s.ShotsTotal), intOrZero(s.ShotsOn)))
	}

	if s.DribblesAttempts != nil || s.DribblesSuccess != nil {
		parts = append(parts, fmt.Sprintf("%d/%d dribbles",
			intOrZero(s.DribblesSuccess), intOrZero(s.DribblesAttempts)))
	}

	return statCategory{name: "Attacking", present: len(parts) > 0, detail: strings.Join(parts, ", ")}
}

func passingRow(s *newsletter.Stats) statCategory {
	var parts []string

	if s.PassesTotal != nil {
		parts = append(parts, fmt.Sprintf("%d passes", *s.PassesTotal))
	}

	if s.PassesKey != nil {
		parts = append(parts, fmt.Sprintf("%d key", *s.PassesKey))
	}

	if s.PassesAccuracy != nil {
		parts = append(parts, fmt.Sprintf("%d%% accuracy", *s.PassesAccuracy))
	}

	return statCategory{name: "Passing", present: len(parts) > 0, detail: strings.Join(parts, ", ")}
}

func defendingRow(s *newsletter.Stats) statCategory {
	var parts []string

	if s.TacklesTotal != nil {
		parts = append(parts, fmt.Sprintf("%d tackles", *s.TacklesTotal))
	}

	if s.TacklesInterceptions != nil {
		parts = append(parts, fmt.Sprintf("%d interceptions", *s.TacklesInterceptions))
	}

	if s.TacklesBlocks != nil {
		parts = append(parts, fmt.Sprintf("%d blocks", *s.TacklesBlocks))
	}

	return statCategory{name: "Defending", present: len(parts) > 0, detail: strings.Join(parts, ", ")}
}

func duelsRow(s *newsletter.Stats) statCategory {
	present := s.DuelsTotal != nil || s.DuelsWon != nil

	return statCategory{
		name:    "Duels",
		present: present,
		detail:  fmt.Sprintf("%d/%d won", intOrZero(s.DuelsWon), intOrZero(s.DuelsTotal)),
	}
}

func goalkeeperRow(s *newsletter.Stats) statCategory {
	var parts []string

	if s.Saves != nil {
		parts = append(parts, fmt.Sprintf("%d saves", *s.Saves))
	}

	if s.GoalsConceded != nil {
		parts = append(parts, fmt.Sprintf("%d conceded", *s.GoalsConceded))
	}

	return statCategory{name: "Goalkeeper", present: len(parts) > 0, detail: strings.Join(parts, ", ")}
}

func disciplineRow(s *newsletter.Stats) statCategory {
	var parts []string

	if s.Yellows != nil {
		parts = append(parts, fmt.Sprintf("%d yellow", *s.Yellows))
	}

	if s.Reds != nil {
		parts = append(parts, fmt.Sprintf("%d red", *s.Reds))
	}

	if s.FoulsCommitted != nil {
		parts = append(parts, fmt.Sprintf("%d fouls", *s.FoulsCommitted))
	}

	return statCategory{name: "Discipline", present: len(parts) > 0, detail: strings.Join(parts, ", ")}
}

func goalsAssists(s *newsletter.Stats) string {
	return fmt.Sprintf("%dG %dA", intOrZero(s.Goals), intOrZero(s.Assists))
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
