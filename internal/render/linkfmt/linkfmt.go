// Package linkfmt renders a player's attached links as a markdown list
// with type-specific icons.
package linkfmt

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

const (
	heading      = "**Links**"
	defaultTitle = "Link"

	iconVideo   = "🎬"
	iconGeneric = "🔗"
)

// videoHosts classify a link as video content.
var videoHosts = map[string]bool{
	"youtube.com": true,
	"youtu.be":    true,
}

// IsVideo reports whether the URL points at a known video host.
func IsVideo(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	return videoHosts[host]
}

// Format renders the links block: a heading plus one bullet per link.
// Links without a title get the default one. Empty input yields an empty
// string.
func Format(links []newsletter.Link) string {
	if len(links) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(heading)
	sb.WriteString("\n")

	for _, l := range links {
		title := l.Title
		if title == "" {
			title = defaultTitle
		}

		icon := iconGeneric
		if IsVideo(l.URL) {
			icon = iconVideo
		}

		fmt.Fprintf(&sb, "- %s [%s](%s)\n", icon, title, l.URL)
	}

	return sb.String()
}
