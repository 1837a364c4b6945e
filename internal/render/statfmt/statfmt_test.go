package statfmt

import (
	"strings"
	"testing"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestLineGoalkeeper(t *testing.T) {
	stats := &newsletter.Stats{
		Minutes:       intp(90),
		Position:      "Goalkeeper",
		Saves:         intp(5),
		GoalsConceded: intp(2),
	}

	got := Line(stats)
	want := "90' | 5 saves | 2 conceded"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineMidfielder(t *testing.T) {
	stats := &newsletter.Stats{
		Minutes:   intp(90),
		Position:  "Midfielder",
		Goals:     intp(1),
		Assists:   intp(2),
		PassesKey: intp(5),
		Rating:    floatp(8.2),
	}

	got := Line(stats)
	want := "90' | 1G 2A | 5 key passes | ⭐ 8.2"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineShortPositionCodes(t *testing.T) {
	gk := Line(&newsletter.Stats{Minutes: intp(45), Position: "G", Saves: intp(3)})
	if gk != "45' | 3 saves" {
		t.Fatalf("short code G: got %q", gk)
	}

	fw := Line(&newsletter.Stats{Minutes: intp(60), Position: "F", Goals: intp(2)})
	if fw != "60' | 2G 0A" {
		t.Fatalf("short code F: got %q", fw)
	}
}

func TestLineDefender(t *testing.T) {
	tests := []struct {
		name  string
		stats *newsletter.Stats
		want  string
	}{
		{
			name: "tackles and interceptions",
			stats: &newsletter.Stats{
				Minutes:              intp(90),
				Position:             "Defender",
				TacklesTotal:         intp(4),
				TacklesInterceptions: intp(2),
			},
			want: "90' | 4T 2I",
		},
		{
			name: "goals only when nonzero",
			stats: &newsletter.Stats{
				Minutes:  intp(90),
				Position: "D",
				Goals:    intp(0),
				Assists:  intp(0),
			},
			want: "90'",
		},
		{
			name: "scoring defender",
			stats: &newsletter.Stats{
				Minutes:      intp(90),
				Position:     "Defender",
				TacklesTotal: intp(3),
				Goals:        intp(1),
			},
			want: "90' | 3T 0I | 1G 0A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.stats); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLineUnknownPositionDefaultsToAttacking(t *testing.T) {
	got := Line(&newsletter.Stats{Minutes: intp(30), Goals: intp(1), ShotsTotal: intp(4)})
	want := "30' | 1G 0A | 4 shots"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineNilStats(t *testing.T) {
	if got := Line(nil); got != "" {
		t.Fatalf("expected empty line, got %q", got)
	}
}

func TestExpandedSkipsAbsentCategories(t *testing.T) {
	stats := &newsletter.Stats{
		Minutes:    intp(90),
		ShotsTotal: intp(3),
		ShotsOn:    intp(2),
		Yellows:    intp(1),
	}

	got := Expanded(stats)

	if !strings.Contains(got, "| Attacking | 3 shots (2 on target) |") {
		t.Errorf("missing attacking row in %q", got)
	}

	if !strings.Contains(got, "| Discipline | 1 yellow |") {
		t.Errorf("missing discipline row in %q", got)
	}

	for _, absent := range []string{"Passing", "Defending", "Duels", "Goalkeeper"} {
		if strings.Contains(got, absent) {
			t.Errorf("unexpected %s row in %q", absent, got)
		}
	}
}

func TestExpandedEmptyWhenNoCategories(t *testing.T) {
	if got := Expanded(&newsletter.Stats{Minutes: intp(90)}); got != "" {
		t.Fatalf("expected empty table, got %q", got)
	}

	if got := Expanded(nil); got != "" {
		t.Fatalf("expected empty table for nil stats, got %q", got)
	}
}

func TestExpandedZeroValuedPresentFieldRenders(t *testing.T) {
	got := Expanded(&newsletter.Stats{DuelsWon: intp(0), DuelsTotal: intp(8)})

	if !strings.Contains(got, "| Duels | 0/8 won |") {
		t.Fatalf("expected zero duels won rendered, got %q", got)
	}
}

func TestCompactCell(t *testing.T) {
	got := CompactCell(&newsletter.Stats{
		Minutes: intp(78),
		Goals:   intp(1),
		Assists: intp(0),
		Rating:  floatp(7.35),
	})
	want := "78' 1G 0A 7.3"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizePosition(t *testing.T) {
	cases := map[string]Position{
		"Goalkeeper": PositionGoalkeeper,
		"g":          PositionGoalkeeper,
		"Defender":   PositionDefender,
		"D":          PositionDefender,
		"Midfielder": PositionMidfielder,
		"m":          PositionMidfielder,
		"Forward":    PositionForward,
		"F":          PositionForward,
		"Winger":     PositionUnknown,
		"":           PositionUnknown,
	}

	for input, want := range cases {
		if got := NormalizePosition(input); got != want {
			t.Errorf("NormalizePosition(%q) = %v, want %v", input, got, want)
		}
	}
}
