// Package matchfmt renders completed matches and upcoming fixtures as a
// chronological markdown list with result indicators.
package matchfmt

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

const (
	headingMatches  = "**This Week's Matches**"
	headingResults  = "**Results**"
	headingUpcoming = "**Upcoming**"

	dateLayout = "2 Jan 2006"
)

// ResultEmoji maps a W/D/L result to its indicator. Anything else gets
// the unknown marker.
func ResultEmoji(result string) string {
	switch result {
	case "W":
		return "🟢"
	case "D":
		return "🟡"
	case "L":
		return "🔴"
	default:
		return "⚪"
	}
}

// Format renders the match block for one player item.
//
// Explicit matches render under "This Week's Matches". Completed fixtures
// render under "Results" only as a fallback when no explicit matches were
// given; otherwise they are assumed to duplicate the match list. Pending
// fixtures always render under "Upcoming". Empty inputs produce an empty
// string.
func Format(matches []newsletter.Match, fixtures []newsletter.Fixture) string {
	if len(matches) == 0 && len(fixtures) == 0 {
		return ""
	}

	completed, pending := partition(fixtures)

	var sb strings.Builder

	if len(matches) > 0 {
		sb.WriteString(headingMatches)
		sb.WriteString("\n")

		for _, m := range matches {
			writeMatchLine(&sb, m)
		}
	} else if len(completed) > 0 {
		sb.WriteString(headingResults)
		sb.WriteString("\n")

		for _, f := range completed {
			writeFixtureResultLine(&sb, f)
		}
	}

	if len(pending) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(headingUpcoming)
		sb.WriteString("\n")

		for _, f := range pending {
			writeUpcomingLine(&sb, f)
		}
	}

	return sb.String()
}

func partition(fixtures []newsletter.Fixture) (completed, pending []newsletter.Fixture) {
	for _, f := range fixtures {
		if f.Completed() {
			completed = append(completed, f)
		} else {
			pending = append(pending, f)
		}
	}

	return completed, pending
}

func writeMatchLine(sb *strings.Builder, m newsletter.Match) {
	fmt.Fprintf(sb, "- %s %s (%s)", ResultEmoji(m.Result), m.Opponent, homeAwayTag(m.Home))

	if m.Score != nil {
		fmt.Fprintf(sb, " %d-%d", m.Score.Home, m.Score.Away)
	}

	if m.Competition != "" {
		fmt.Fprintf(sb, " (%s)", m.Competition)
	}

	sb.WriteString("\n")
}

func writeFixtureResultLine(sb *strings.Builder, f newsletter.Fixture) {
	fmt.Fprintf(sb, "- %s %s (%s)", ResultEmoji(f.Result), f.Opponent, homeAwayTag(f.IsHome))

	if f.TeamScore != nil && f.OpponentScore != nil {
		fmt.Fprintf(sb, " %d-%d", *f.TeamScore, *f.OpponentScore)
	}

	if f.Competition != "" {
		fmt.Fprintf(sb, " (%s)", f.Competition)
	}

	sb.WriteString("\n")
}

func writeUpcomingLine(sb *strings.Builder, f newsletter.Fixture) {
	prefix := "vs"
	if !f.IsHome {
		prefix = "@"
	}

	fmt.Fprintf(sb, "- %s %s", prefix, f.Opponent)

	if f.Competition != "" {
		fmt.Fprintf(sb, " (%s)", f.Competition)
	}

	if f.Date != "" {
		fmt.Fprintf(sb, ", %s", FormatDate(f.Date))
	}

	sb.WriteString("\n")
}

func homeAwayTag(home bool) string {
	if home {
		return "H"
	}

	return "A"
}

// FormatDate formats a fixture date as "2 Jan 2006". Timestamps are
// truncated to the date part before parsing; unparseable input is
// returned verbatim.
func FormatDate(raw string) string {
	dateOnly := raw
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		dateOnly = raw[:idx]
	}

	parsed, err := dateparse.ParseAny(dateOnly)
	if err != nil {
		return raw
	}

	return parsed.Format(dateLayout)
}
