package publish

import "strings"

// SplitMessage breaks text into chunks no longer than limit runes,
// preferring paragraph boundaries, then line boundaries. A single line
// longer than the limit is hard-cut.
func SplitMessage(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var (
		chunks  []string
		current strings.Builder
	)

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}

		current.Reset()
	}

	for _, para := range strings.Split(text, "\n\n") {
		pieces := []string{para}
		if len([]rune(para)) > limit {
			pieces = splitLongParagraph(para, limit)
		}

		for _, piece := range pieces {
			sep := 0
			if current.Len() > 0 {
				sep = 2
			}

			if len([]rune(current.String()))+sep+len([]rune(piece)) > limit {
				flush()
			}

			if current.Len() > 0 {
				current.WriteString("\n\n")
			}

			current.WriteString(piece)
		}
	}

	flush()

	return chunks
}

func splitLongParagraph(para string, limit int) []string {
	var (
		pieces  []string
		current strings.Builder
	)

	flush := func() {
		if piece := strings.TrimSpace(current.String()); piece != "" {
			pieces = append(pieces, piece)
		}

		current.Reset()
	}

	for _, line := range strings.Split(para, "\n") {
		for _, part := range hardCut(line, limit) {
			sep := 0
			if current.Len() > 0 {
				sep = 1
			}

			if len([]rune(current.String()))+sep+len([]rune(part)) > limit {
				flush()
			}

			if current.Len() > 0 {
				current.WriteString("\n")
			}

			current.WriteString(part)
		}
	}

	flush()

	return pieces
}

func hardCut(line string, limit int) []string {
	runes := []rune(line)
	if len(runes) <= limit {
		return []string{line}
	}

	var parts []string

	for len(runes) > limit {
		parts = append(parts, string(runes[:limit]))
		runes = runes[limit:]
	}

	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}

	return parts
}
