package llm

import (
	"context"
	"fmt"
)

// mockClient returns deterministic copy, used in tests and when no API
// key is configured.
type mockClient struct{}

// NewMock creates a drafting client that never calls out.
func NewMock() Client {
	return &mockClient{}
}

func (mockClient) DraftWeekSummary(_ context.Context, input DraftInput) (string, error) {
	if len(input.Matches) == 0 {
		return fmt.Sprintf("%s had a quiet week at %s with no matches recorded.", input.PlayerName, input.LoanTeam), nil
	}

	return fmt.Sprintf("%s featured for %s this week across %d match(es).",
		input.PlayerName, input.LoanTeam, len(input.Matches)), nil
}
