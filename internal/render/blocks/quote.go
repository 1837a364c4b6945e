package blocks

import (
	"fmt"
	"time"
)

// Quote source types.
const (
	SourcePublicLink    = "public_link"
	SourceDirectMessage = "direct_message"
	SourceEmail         = "email"
	SourcePersonal      = "personal"
	SourceAnonymous     = "anonymous"
)

// quoteView is the template data for a quote block. URL is set only for
// public links; the template renders a hyperlinked attribution then.
type quoteView struct {
	Text        string
	Attribution string
	URL         string
	Date        string
}

func quoteData(b Block, brand string) quoteView {
	v := quoteView{
		Text: b.QuoteText,
		Date: formatQuoteDate(b.QuoteDate),
	}

	switch b.SourceType {
	case SourcePublicLink:
		v.Attribution = b.SourceName
		v.URL = b.SourceURL
	case SourceDirectMessage:
		platform := b.SourcePlatform
		if platform == "" {
			platform = "direct"
		}

		v.Attribution = fmt.Sprintf("%s, via %s DM", b.SourceName, platform)
	case SourceEmail:
		v.Attribution = fmt.Sprintf("%s, via email", b.SourceName)
	case SourcePersonal:
		v.Attribution = fmt.Sprintf("%s, speaking to %s", b.SourceName, brand)
	case SourceAnonymous:
		v.Attribution = "according to sources"
	default:
		v.Attribution = b.SourceName
	}

	return v
}

// formatQuoteDate turns a YYYY-MM date into "Jan 2006". Anything else is
// dropped rather than guessed at.
func formatQuoteDate(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return ""
	}

	return parsed.Format("Jan 2006")
}
