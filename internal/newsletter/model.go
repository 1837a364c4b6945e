// Package newsletter defines the structured newsletter document model.
//
// A document is produced upstream (backend composer or agent) and flows
// through the renderers read-only. Optional numeric fields are pointers:
// an absent stat is not the same thing as a zero stat, and the formatters
// rely on that distinction to decide whether a category renders at all.
package newsletter

import (
	"encoding/json"
	"fmt"
)

// Document is the root of a weekly newsletter.
type Document struct {
	Title      string     `json:"title"`
	Season     string     `json:"season,omitempty"`
	DateRange  *WeekRange `json:"dateRange,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Highlights []string   `json:"highlights,omitempty"`
	ByNumbers  *ByNumbers `json:"byNumbers,omitempty"`
	Sections   []Section  `json:"sections"`
}

// ByNumbers carries the weekly leaderboards shown in the header block.
type ByNumbers struct {
	MinutesLeaders []string `json:"minutesLeaders,omitempty"`
	GALeaders      []string `json:"gaLeaders,omitempty"`
}

// Section groups player items under a heading. Order is significant and
// preserved in every output format.
type Section struct {
	Title string       `json:"title"`
	Items []PlayerItem `json:"items"`
}

// PlayerItem is one tracked loanee within a section.
//
// CanFetchStats=false marks a manually tracked player with no verified
// numbers; renderers must emit an explicit notice instead of zeros.
type PlayerItem struct {
	PlayerName       string    `json:"playerName"`
	LoanTeam         string    `json:"loanTeam,omitempty"`
	CanFetchStats    bool      `json:"canFetchStats"`
	Stats            *Stats    `json:"stats,omitempty"`
	WeekSummary      string    `json:"weekSummary,omitempty"`
	Matches          []Match   `json:"matches,omitempty"`
	UpcomingFixtures []Fixture `json:"upcomingFixtures,omitempty"`
	Links            []Link    `json:"links,omitempty"`
}

// Stats is the flat per-week stat block for one player. Every field is
// optional.
type Stats struct {
	Minutes  *int     `json:"minutes,omitempty"`
	Goals    *int     `json:"goals,omitempty"`
	Assists  *int     `json:"assists,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Position string   `json:"position,omitempty"`

	Saves         *int `json:"saves,omitempty"`
	GoalsConceded *int `json:"goals_conceded,omitempty"`

	ShotsTotal *int `json:"shots_total,omitempty"`
	ShotsOn    *int `json:"shots_on,omitempty"`

	PassesTotal    *int `json:"passes_total,omitempty"`
	PassesKey      *int `json:"passes_key,omitempty"`
	PassesAccuracy *int `json:"passes_accuracy,omitempty"`

	TacklesTotal         *int `json:"tackles_total,omitempty"`
	TacklesInterceptions *int `json:"tackles_interceptions,omitempty"`
	TacklesBlocks        *int `json:"tackles_blocks,omitempty"`

	DuelsTotal *int `json:"duels_total,omitempty"`
	DuelsWon   *int `json:"duels_won,omitempty"`

	DribblesAttempts *int `json:"dribbles_attempts,omitempty"`
	DribblesSuccess  *int `json:"dribbles_success,omitempty"`

	FoulsDrawn     *int `json:"fouls_drawn,omitempty"`
	FoulsCommitted *int `json:"fouls_committed,omitempty"`
	Offsides       *int `json:"offsides,omitempty"`
	Yellows        *int `json:"yellows,omitempty"`
	Reds           *int `json:"reds,omitempty"`
}

// Match is a completed game from the explicit weekly match list.
type Match struct {
	Opponent    string `json:"opponent"`
	Home        bool   `json:"home"`
	Result      string `json:"result,omitempty"` // W, D, L or empty
	Score       *Score `json:"score,omitempty"`
	Competition string `json:"competition,omitempty"`
}

// Score holds the goals for the loanee's team and the opponent.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// FixtureStatus values recognised on Fixture.Status.
const (
	FixtureCompleted = "completed"
	FixturePending   = "pending"
)

// Fixture is an entry from the fixture feed. Completed fixtures carry a
// result and final scores; pending ones carry a kickoff date.
type Fixture struct {
	Opponent      string `json:"opponent"`
	IsHome        bool   `json:"isHome"`
	Status        string `json:"status,omitempty"`
	Result        string `json:"result,omitempty"`
	TeamScore     *int   `json:"teamScore,omitempty"`
	OpponentScore *int   `json:"opponentScore,omitempty"`
	Competition   string `json:"competition,omitempty"`
	Date          string `json:"date,omitempty"`
}

// Completed reports whether the fixture finished with a known result.
func (f Fixture) Completed() bool {
	return f.Status == FixtureCompleted && f.Result != ""
}

// Link is an attached video or article. The wire shape is either a bare
// URL string or {url, title}; both decode into the struct form.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the object shape.
func (l *Link) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.URL = s
		l.Title = ""

		return nil
	}

	type plain Link

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode link: %w", err)
	}

	*l = Link(p)

	return nil
}

// WeekRange is the [start, end] pair from the document header, encoded on
// the wire as a two-element JSON array of date strings.
type WeekRange struct {
	Start string
	End   string
}

// UnmarshalJSON decodes the two-element array form. Extra elements are
// ignored, a single element sets only the start.
func (w *WeekRange) UnmarshalJSON(data []byte) error {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("decode date range: %w", err)
	}

	if len(parts) > 0 {
		w.Start = parts[0]
	}

	if len(parts) > 1 {
		w.End = parts[1]
	}

	return nil
}

// MarshalJSON restores the array wire shape.
func (w WeekRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{w.Start, w.End})
}
