package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	rateLimiterBurst = 2
	maxSummaryRunes  = 400

	draftPromptTemplate = `You write one short paragraph (2-3 sentences) for a weekly footballer loan newsletter.
Player: %s, on loan at %s.
Stat line: %s
Matches this week:
%s
Write a neutral, factual summary of the player's week. Plain text only, no markdown, no headings.`
)

type openaiClient struct {
	client      *openai.Client
	model       string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewOpenAI builds a drafting client backed by the chat completions API.
func NewOpenAI(apiKey, model string, rps int, logger zerolog.Logger) Client {
	return &openaiClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rps)), rateLimiterBurst),
		logger:      logger.With().Str("component", "llm").Logger(),
	}
}

func (c *openaiClient) DraftWeekSummary(ctx context.Context, input DraftInput) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	prompt := buildDraftPrompt(input)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion for %s", input.PlayerName)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if runes := []rune(summary); len(runes) > maxSummaryRunes {
		summary = string(runes[:maxSummaryRunes])
	}

	c.logger.Debug().Str("player", input.PlayerName).Int("len", len(summary)).Msg("drafted week summary")

	return summary, nil
}

func buildDraftPrompt(input DraftInput) string {
	matches := "none recorded"
	if len(input.Matches) > 0 {
		matches = "- " + strings.Join(input.Matches, "\n- ")
	}

	stats := input.StatsLine
	if stats == "" {
		stats = "not available"
	}

	return fmt.Sprintf(draftPromptTemplate, input.PlayerName, input.LoanTeam, stats, matches)
}
