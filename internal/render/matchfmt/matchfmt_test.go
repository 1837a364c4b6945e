package matchfmt

import (
	"strings"
	"testing"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

func intp(v int) *int { return &v }

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}

	if got := Format([]newsletter.Match{}, []newsletter.Fixture{}); got != "" {
		t.Fatalf("expected empty string for empty slices, got %q", got)
	}
}

func TestFormatCompletedMatches(t *testing.T) {
	matches := []newsletter.Match{
		{Opponent: "Oxford United", Home: true, Result: "W", Score: &newsletter.Score{Home: 2, Away: 1}, Competition: "League One"},
		{Opponent: "Derby County", Home: false, Result: "L"},
		{Opponent: "Luton Town", Home: true},
	}

	got := Format(matches, nil)

	if !strings.Contains(got, "**This Week's Matches**") {
		t.Fatalf("missing heading in %q", got)
	}

	for _, want := range []string{
		"- 🟢 Oxford United (H) 2-1 (League One)",
		"- 🔴 Derby County (A)",
		"- ⚪ Luton Town (H)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing line %q in %q", want, got)
		}
	}
}

func TestFormatFixtureFallbackResults(t *testing.T) {
	fixtures := []newsletter.Fixture{
		{
			Opponent:      "Sunderland",
			IsHome:        false,
			Status:        newsletter.FixtureCompleted,
			Result:        "D",
			TeamScore:     intp(1),
			OpponentScore: intp(1),
			Competition:   "Championship",
		},
	}

	got := Format(nil, fixtures)

	if !strings.Contains(got, "**Results**") {
		t.Fatalf("expected fallback Results heading in %q", got)
	}

	if !strings.Contains(got, "- 🟡 Sunderland (A) 1-1 (Championship)") {
		t.Fatalf("missing fixture result line in %q", got)
	}
}

func TestFormatNoFallbackWhenMatchesPresent(t *testing.T) {
	matches := []newsletter.Match{{Opponent: "Stockport", Home: true, Result: "W"}}
	fixtures := []newsletter.Fixture{
		{Opponent: "Stockport", IsHome: true, Status: newsletter.FixtureCompleted, Result: "W"},
	}

	got := Format(matches, fixtures)

	if strings.Contains(got, "**Results**") {
		t.Fatalf("fallback Results should not render alongside explicit matches: %q", got)
	}
}

func TestFormatUpcoming(t *testing.T) {
	fixtures := []newsletter.Fixture{
		{Opponent: "Arsenal", IsHome: true, Status: newsletter.FixturePending, Competition: "Premier League", Date: "2026-08-24T15:00:00Z"},
		{Opponent: "Chelsea", IsHome: false},
	}

	got := Format(nil, fixtures)

	if !strings.Contains(got, "**Upcoming**") {
		t.Fatalf("missing Upcoming heading in %q", got)
	}

	if !strings.Contains(got, "- vs Arsenal (Premier League), 24 Aug 2026") {
		t.Errorf("missing home fixture with formatted date in %q", got)
	}

	if !strings.Contains(got, "- @ Chelsea") {
		t.Errorf("missing away fixture prefix in %q", got)
	}
}

func TestFormatCompletedWithoutResultIsPending(t *testing.T) {
	fixtures := []newsletter.Fixture{
		{Opponent: "Barnsley", IsHome: true, Status: newsletter.FixtureCompleted},
	}

	got := Format(nil, fixtures)

	if !strings.Contains(got, "**Upcoming**") {
		t.Fatalf("fixture without result should be treated as pending: %q", got)
	}
}

func TestResultEmoji(t *testing.T) {
	cases := map[string]string{"W": "🟢", "D": "🟡", "L": "🔴", "": "⚪", "X": "⚪"}

	for result, want := range cases {
		if got := ResultEmoji(result); got != want {
			t.Errorf("ResultEmoji(%q) = %q, want %q", result, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-08-24T15:00:00Z": "24 Aug 2026",
		"2026-08-24":           "24 Aug 2026",
		"not a date":           "not a date",
	}

	for input, want := range cases {
		if got := FormatDate(input); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", input, got, want)
		}
	}
}
