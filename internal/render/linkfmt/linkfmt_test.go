package linkfmt

import (
	"strings"
	"testing"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatLinks(t *testing.T) {
	links := []newsletter.Link{
		{URL: "https://www.youtube.com/watch?v=abc", Title: "All goals"},
		{URL: "https://youtu.be/xyz"},
		{URL: "https://theathletic.com/loan-report", Title: "Loan report"},
	}

	got := Format(links)

	if !strings.Contains(got, "**Links**") {
		t.Fatalf("missing heading in %q", got)
	}

	for _, want := range []string{
		"- 🎬 [All goals](https://www.youtube.com/watch?v=abc)",
		"- 🎬 [Link](https://youtu.be/xyz)",
		"- 🔗 [Loan report](https://theathletic.com/loan-report)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing line %q in %q", want, got)
		}
	}
}

func TestIsVideo(t *testing.T) {
	cases := map[string]bool{
		"https://youtube.com/watch?v=1":     true,
		"https://www.youtube.com/watch?v=1": true,
		"https://youtu.be/1":                true,
		"https://vimeo.com/1":               false,
		"https://example.com/youtube.com":   false,
		"://bad":                            false,
	}

	for input, want := range cases {
		if got := IsVideo(input); got != want {
			t.Errorf("IsVideo(%q) = %v, want %v", input, got, want)
		}
	}
}
