package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldside/loanwatch/internal/newsletter"
)

type scriptedClient struct {
	drafted []string
	err     error
}

func (c *scriptedClient) DraftWeekSummary(_ context.Context, input DraftInput) (string, error) {
	if c.err != nil {
		return "", c.err
	}

	c.drafted = append(c.drafted, input.PlayerName)

	return "drafted for " + input.PlayerName, nil
}

func sampleDoc() *newsletter.Document {
	return &newsletter.Document{
		Title: "Week 3",
		Sections: []newsletter.Section{{
			Title: "Midfield",
			Items: []newsletter.PlayerItem{
				{PlayerName: "Marc Vidal", LoanTeam: "Preston", WeekSummary: "already written"},
				{PlayerName: "Tomasz Hart", LoanTeam: "FC Utrecht"},
			},
		}},
	}
}

func TestDraftMissingSummaries(t *testing.T) {
	client := &scriptedClient{}
	d := NewDrafter(client, zerolog.Nop())

	out, err := d.DraftMissingSummaries(context.Background(), sampleDoc())
	require.NoError(t, err)

	assert.Equal(t, []string{"Tomasz Hart"}, client.drafted)
	assert.Equal(t, "already written", out.Sections[0].Items[0].WeekSummary)
	assert.Equal(t, "drafted for Tomasz Hart", out.Sections[0].Items[1].WeekSummary)
}

func TestDraftMissingSummariesDoesNotMutateInput(t *testing.T) {
	doc := sampleDoc()
	d := NewDrafter(&scriptedClient{}, zerolog.Nop())

	_, err := d.DraftMissingSummaries(context.Background(), doc)
	require.NoError(t, err)

	assert.Empty(t, doc.Sections[0].Items[1].WeekSummary)
}

func TestDraftMissingSummariesPartialFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("quota exceeded")}
	d := NewDrafter(client, zerolog.Nop())

	out, err := d.DraftMissingSummaries(context.Background(), sampleDoc())
	require.NoError(t, err)

	assert.Empty(t, out.Sections[0].Items[1].WeekSummary)
	assert.Equal(t, "already written", out.Sections[0].Items[0].WeekSummary)
}

func TestDraftInputForIncludesMatches(t *testing.T) {
	item := &newsletter.PlayerItem{
		PlayerName: "Marc Vidal",
		LoanTeam:   "Preston",
		Matches: []newsletter.Match{
			{Opponent: "Oxford United", Home: true, Score: &newsletter.Score{Home: 2, Away: 1}},
			{Opponent: "Hull City", Home: false},
		},
	}

	input := draftInputFor(item)

	require.Len(t, input.Matches, 2)
	assert.Equal(t, "Oxford United (H) 2-1", input.Matches[0])
	assert.Equal(t, "Hull City (A)", input.Matches[1])
}

func TestMockClient(t *testing.T) {
	c := NewMock()

	got, err := c.DraftWeekSummary(context.Background(), DraftInput{PlayerName: "Marc Vidal", LoanTeam: "Preston"})
	require.NoError(t, err)
	assert.Contains(t, got, "Marc Vidal")
	assert.Contains(t, got, "Preston")
}
