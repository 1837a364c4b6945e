// Package markdown composes a newsletter document into shareable
// markdown, in a full and a compact variant.
//
// Composition is a single pass over an immutable document; rendering the
// same document twice produces byte-identical output. User content is not
// markdown-escaped (authors are trusted on this path); escaping belongs
// to the HTML renderers.
package markdown

import (
	"fmt"
	"strings"

	"github.com/fieldside/loanwatch/internal/newsletter"
	"github.com/fieldside/loanwatch/internal/render/linkfmt"
	"github.com/fieldside/loanwatch/internal/render/matchfmt"
	"github.com/fieldside/loanwatch/internal/render/statfmt"
)

const (
	defaultTitle = "Loan Watch"
	separator    = "---"

	statsUnavailableNotice = "*Stats not available for this player (manually tracked).*"
	attributionLine        = "*Compiled by Loan Watch, the weekly loanee tracker.*"
)

// Options control the optional parts of the full composition.
type Options struct {
	IncludeExpandedStats bool
	IncludeLinks         bool
	WebURL               string
}

// DefaultOptions enables the expanded stats table and links.
func DefaultOptions() Options {
	return Options{IncludeExpandedStats: true, IncludeLinks: true}
}

// RenderBytes unwraps raw stored bytes (document or envelope) and renders
// the full markdown. It never fails; malformed input degrades to a
// minimal document.
func RenderBytes(raw []byte, opts Options) string {
	return Render(newsletter.Decode(raw), opts)
}

// Render composes the full newsletter markdown.
func Render(doc *newsletter.Document, opts Options) string {
	var sb strings.Builder

	writeHeader(&sb, doc)

	for _, section := range doc.Sections {
		writeSection(&sb, section, opts)
	}

	sb.WriteString(attributionLine)
	sb.WriteString("\n")

	if opts.WebURL != "" {
		fmt.Fprintf(&sb, "\n[Read this issue online](%s)\n", opts.WebURL)
	}

	return sb.String()
}

func writeHeader(sb *strings.Builder, doc *newsletter.Document) {
	title := doc.Title
	if title == "" {
		title = defaultTitle
	}

	fmt.Fprintf(sb, "# %s\n\n", title)

	meta := headerMeta(doc)
	if meta != "" {
		sb.WriteString(meta)
		sb.WriteString("\n\n")
	}

	sb.WriteString(separator)
	sb.WriteString("\n\n")

	if doc.Summary != "" {
		fmt.Fprintf(sb, "> %s\n\n", doc.Summary)
	}

	if len(doc.Highlights) > 0 {
		sb.WriteString("**Highlights**\n")

		for _, h := range doc.Highlights {
			fmt.Fprintf(sb, "- %s\n", h)
		}

		sb.WriteString("\n")
	}

	writeByNumbers(sb, doc.ByNumbers)
}

// headerMeta formats the week range and season on one line.
func headerMeta(doc *newsletter.Document) string {
	var parts []string

	if r := FormatRange(doc.DateRange); r != "" {
		parts = append(parts, "**"+r+"**")
	}

	if doc.Season != "" {
		parts = append(parts, doc.Season)
	}

	return strings.Join(parts, " · ")
}

// FormatRange formats the week range as "2 Jan 2006 — 2 Jan 2006".
func FormatRange(r *newsletter.WeekRange) string {
	if r == nil {
		return ""
	}

	switch {
	case r.Start != "" && r.End != "":
		return matchfmt.FormatDate(r.Start) + " — " + matchfmt.FormatDate(r.End)
	case r.Start != "":
		return matchfmt.FormatDate(r.Start)
	case r.End != "":
		return matchfmt.FormatDate(r.End)
	default:
		return ""
	}
}

func writeByNumbers(sb *strings.Builder, bn *newsletter.ByNumbers) {
	if bn == nil || (len(bn.MinutesLeaders) == 0 && len(bn.GALeaders) == 0) {
		return
	}

	sb.WriteString("**By The Numbers**\n")

	if len(bn.MinutesLeaders) > 0 {
		fmt.Fprintf(sb, "- Minutes leaders: %s\n", strings.Join(bn.MinutesLeaders, ", "))
	}

	if len(bn.GALeaders) > 0 {
		fmt.Fprintf(sb, "- Goals + assists leaders: %s\n", strings.Join(bn.GALeaders, ", "))
	}

	sb.WriteString("\n")
}

func writeSection(sb *strings.Builder, section newsletter.Section, opts Options) {
	fmt.Fprintf(sb, "## 📋 %s\n\n", section.Title)

	for _, item := range section.Items {
		writeItem(sb, item, opts)
	}
}

func writeItem(sb *strings.Builder, item newsletter.PlayerItem, opts Options) {
	fmt.Fprintf(sb, "### %s\n\n", item.PlayerName)

	if item.LoanTeam != "" {
		fmt.Fprintf(sb, "*On loan at %s*\n\n", item.LoanTeam)
	}

	if item.CanFetchStats && item.Stats != nil {
		fmt.Fprintf(sb, "%s\n\n", statfmt.Line(item.Stats))

		if opts.IncludeExpandedStats {
			if table := statfmt.Expanded(item.Stats); table != "" {
				sb.WriteString(table)
				sb.WriteString("\n")
			}
		}
	} else {
		sb.WriteString(statsUnavailableNotice)
		sb.WriteString("\n\n")
	}

	if item.WeekSummary != "" {
		fmt.Fprintf(sb, "%s\n\n", item.WeekSummary)
	}

	if block := matchfmt.Format(item.Matches, item.UpcomingFixtures); block != "" {
		sb.WriteString(block)
		sb.WriteString("\n")
	}

	if opts.IncludeLinks {
		if block := linkfmt.Format(item.Links); block != "" {
			sb.WriteString(block)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(separator)
	sb.WriteString("\n\n")
}
