// Package textfmt converts loosely formatted author prose into HTML
// paragraphs and bullet lists.
//
// All plain text is entity-escaped before insertion; the escaping is an
// XSS contract, not cosmetics. Input that already carries block-level
// markup is passed through untouched, which also makes ToHTML idempotent.
package textfmt

import (
	"html"
	"regexp"
	"strings"
)

// blockMarkers identify content that is already HTML-structured.
var blockMarkers = []string{"<p>", "<br", "<ul>", "<div>"}

var (
	numberedRe = regexp.MustCompile(`^\d+[.)][ \t]`)
	bulletRe   = regexp.MustCompile("^[•·\\-*–—][ \t]")
)

// HasMarkup reports whether the text already contains block-level HTML.
func HasMarkup(text string) bool {
	for _, marker := range blockMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}

// ToHTML structures raw prose into <p> and <ul> blocks.
//
// Consecutive bullet lines (•, ·, -, *, –, — or "1." / "1)" prefixes)
// accumulate into one list; consecutive plain lines accumulate into one
// paragraph joined with <br>; a blank line flushes the current block.
// Pre-formatted input is returned unchanged.
func ToHTML(text string) string {
	if text == "" {
		return ""
	}

	if HasMarkup(text) {
		return text
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var (
		sb        strings.Builder
		paragraph []string
		bullets   []string
	)

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}

		sb.WriteString("<p>")
		sb.WriteString(strings.Join(paragraph, "<br>"))
		sb.WriteString("</p>")

		paragraph = nil
	}

	flushBullets := func() {
		if len(bullets) == 0 {
			return
		}

		sb.WriteString("<ul>")

		for _, b := range bullets {
			sb.WriteString("<li>")
			sb.WriteString(b)
			sb.WriteString("</li>")
		}

		sb.WriteString("</ul>")

		bullets = nil
	}

	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushBullets()
			flushParagraph()

			continue
		}

		if marker := bulletMarkerLen(trimmed); marker > 0 {
			flushParagraph()

			item := strings.TrimSpace(trimmed[marker:])
			bullets = append(bullets, escape(item))

			continue
		}

		flushBullets()

		paragraph = append(paragraph, escape(trimmed))
	}

	flushBullets()
	flushParagraph()

	return sb.String()
}

// SimpleLineBreaks is the reduced variant: escape, then double newlines
// become paragraph breaks and single newlines become <br>. Pre-formatted
// input passes through.
func SimpleLineBreaks(text string) string {
	if text == "" {
		return ""
	}

	if HasMarkup(text) {
		return text
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var parts []string

	for _, para := range strings.Split(normalized, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		lines := strings.Split(para, "\n")
		for i, line := range lines {
			lines[i] = escape(strings.TrimSpace(line))
		}

		parts = append(parts, "<p>"+strings.Join(lines, "<br>")+"</p>")
	}

	return strings.Join(parts, "")
}

// bulletMarkerLen returns the byte length of a leading bullet marker
// (marker plus following space), or 0 when the line is not a bullet.
func bulletMarkerLen(line string) int {
	if m := bulletRe.FindString(line); m != "" {
		return len(m)
	}

	if m := numberedRe.FindString(line); m != "" {
		return len(m)
	}

	return 0
}

// escape entity-encodes &, <, >, " and '.
func escape(s string) string {
	return html.EscapeString(s)
}
