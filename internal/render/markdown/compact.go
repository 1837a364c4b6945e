package markdown

import (
	"fmt"
	"strings"

	"github.com/fieldside/loanwatch/internal/newsletter"
	"github.com/fieldside/loanwatch/internal/render/statfmt"
)

const compactUnavailableCell = "not available"

// RenderCompactBytes unwraps raw stored bytes and renders the compact
// variant. Like RenderBytes it never fails.
func RenderCompactBytes(raw []byte) string {
	return RenderCompact(newsletter.Decode(raw))
}

// RenderCompact composes the brevity-first variant: header, range and
// summary, then one player table per section. No expanded stats, no
// matches, no links.
func RenderCompact(doc *newsletter.Document) string {
	var sb strings.Builder

	title := doc.Title
	if title == "" {
		title = defaultTitle
	}

	fmt.Fprintf(&sb, "# %s\n\n", title)

	if r := FormatRange(doc.DateRange); r != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", r)
	}

	if doc.Summary != "" {
		fmt.Fprintf(&sb, "> %s\n\n", doc.Summary)
	}

	for _, section := range doc.Sections {
		writeCompactSection(&sb, section)
	}

	return sb.String()
}

func writeCompactSection(sb *strings.Builder, section newsletter.Section) {
	fmt.Fprintf(sb, "## 📋 %s\n\n", section.Title)
	sb.WriteString("| Player | Team | Stats |\n")
	sb.WriteString("| --- | --- | --- |\n")

	for _, item := range section.Items {
		cell := compactUnavailableCell
		if item.CanFetchStats && item.Stats != nil {
			cell = statfmt.CompactCell(item.Stats)
		}

		fmt.Fprintf(sb, "| %s | %s | %s |\n", item.PlayerName, item.LoanTeam, cell)
	}

	sb.WriteString("\n")
}
