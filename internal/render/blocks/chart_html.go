package blocks

import (
	"fmt"
	"strings"

	"github.com/fieldside/loanwatch/internal/charts"
	"github.com/fieldside/loanwatch/internal/render/matchfmt"
)

// renderChart projects a fetched chart payload to semantic HTML. The
// fetch outcome was resolved up front; this stage only dispatches.
func (r *Renderer) renderChart(sb *strings.Builder, b Block, result chartResult) {
	if result.err != nil {
		r.execute(sb, "chartError", nil)
		return
	}

	if result.data.Empty() {
		r.execute(sb, "chartEmpty", nil)
		return
	}

	switch b.ChartType {
	case charts.TypeMatchCard:
		r.execute(sb, "matchCards", matchCardsData(result.data))
	case charts.TypeRadar, charts.TypeBar, charts.TypeLine:
		r.execute(sb, "seriesChart", seriesChartData(b.ChartType, result.data))
	case charts.TypeStatTable:
		r.execute(sb, "statTable", statTableData(result.data))
	default:
		r.execute(sb, "chartUnknown", b.ChartType)
	}
}

type matchCardView struct {
	Emoji       string
	Opponent    string
	Venue       string
	Score       string
	Competition string
	Date        string
}

func matchCardsData(data *charts.Data) []matchCardView {
	cards := make([]matchCardView, 0, len(data.Matches))

	for _, m := range data.Matches {
		venue := "A"
		if m.Home {
			venue = "H"
		}

		card := matchCardView{
			Emoji:       matchfmt.ResultEmoji(m.Result),
			Opponent:    m.Opponent,
			Venue:       venue,
			Competition: m.Competition,
		}

		card.Score = fmt.Sprintf("%d-%d", m.TeamScore, m.OppScore)

		if m.Date != "" {
			card.Date = matchfmt.FormatDate(m.Date)
		}

		cards = append(cards, card)
	}

	return cards
}

// seriesView renders radar, bar and line charts as labelled value lists;
// the kind only drives the CSS class.
type seriesView struct {
	Kind   string
	Series []seriesRows
}

type seriesRows struct {
	Name string
	Rows []seriesRow
}

type seriesRow struct {
	Label string
	Value float64
}

func seriesChartData(kind string, data *charts.Data) seriesView {
	view := seriesView{Kind: kind}

	for _, s := range data.Series {
		group := seriesRows{Name: s.Name}

		for i, p := range s.Points {
			label := ""
			if i < len(data.Labels) {
				label = data.Labels[i]
			}

			group.Rows = append(group.Rows, seriesRow{Label: label, Value: p})
		}

		view.Series = append(view.Series, group)
	}

	return view
}

type statTableView struct {
	Labels []string
	Rows   []statTableRow
}

type statTableRow struct {
	Name   string
	Points []float64
}

func statTableData(data *charts.Data) statTableView {
	view := statTableView{Labels: data.Labels}

	for _, s := range data.Series {
		view.Rows = append(view.Rows, statTableRow{Name: s.Name, Points: s.Points})
	}

	return view
}
