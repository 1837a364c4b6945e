// Package app wires configuration, storage and services into runnable
// modes.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fieldside/loanwatch/internal/charts"
	"github.com/fieldside/loanwatch/internal/httpapi"
	"github.com/fieldside/loanwatch/internal/ingest/feeds"
	"github.com/fieldside/loanwatch/internal/linkresolver"
	"github.com/fieldside/loanwatch/internal/llm"
	"github.com/fieldside/loanwatch/internal/newsletter"
	"github.com/fieldside/loanwatch/internal/platform/config"
	"github.com/fieldside/loanwatch/internal/platform/observability"
	"github.com/fieldside/loanwatch/internal/publish"
	"github.com/fieldside/loanwatch/internal/render/blocks"
	"github.com/fieldside/loanwatch/internal/render/markdown"
	"github.com/fieldside/loanwatch/internal/storage"
)

// App holds the wired service graph.
type App struct {
	cfg    *config.Config
	db     *storage.DB
	logger *zerolog.Logger

	chartClient *charts.Client
	renderer    *blocks.Renderer
}

func New(cfg *config.Config, db *storage.DB, logger *zerolog.Logger) *App {
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	chartClient := charts.NewClient(cfg.StatsAPIURL, cfg.StatsAPIRPS, cache, cfg.ChartCacheTTL, logger)

	return &App{
		cfg:         cfg,
		db:          db,
		logger:      logger,
		chartClient: chartClient,
		renderer:    blocks.NewRenderer(chartClient, logger),
	}
}

// StartHealthServer runs the health and metrics endpoint until ctx is
// cancelled.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.db, a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunServe runs the public read API.
func (a *App) RunServe(ctx context.Context) error {
	srv := httpapi.NewServer(a.db, a.renderer, a.cfg.Brand, a.cfg.WebBaseURL, a.cfg.HTTPPort, *a.logger)

	return srv.Start(ctx)
}

// RunIngest polls configured feeds for loanee mentions and backfills
// titles for links stored without one.
func (a *App) RunIngest(ctx context.Context, once bool) error {
	collector := feeds.NewCollector(a.db, a.cfg.FeedURLs, a.cfg.FeedPollInterval, *a.logger)
	resolver := linkresolver.NewResolver(
		linkresolver.NewWebFetcher(a.cfg.LinkFetchRPS, a.cfg.LinkFetchTimeout), *a.logger)

	if once {
		collector.CollectOnce(ctx)

		return linkresolver.Backfill(ctx, a.db, resolver, *a.logger)
	}

	go func() {
		ticker := time.NewTicker(a.cfg.FeedPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := linkresolver.Backfill(ctx, a.db, resolver, *a.logger); err != nil {
					a.logger.Error().Err(err).Msg("link backfill failed")
				}
			}
		}
	}()

	collector.Run(ctx)

	return ctx.Err()
}

// RunRender renders the latest issue to markdown and caches it. With
// drafting enabled, missing week summaries are filled in first.
func (a *App) RunRender(ctx context.Context) error {
	n, err := a.db.LatestNewsletter(ctx)
	if err != nil {
		return fmt.Errorf("load latest newsletter: %w", err)
	}

	content := n.Content

	if a.cfg.SummaryDraftingEnabled {
		drafted, err := a.draftSummaries(ctx, content)
		if err != nil {
			a.logger.Warn().Err(err).Msg("summary drafting failed, rendering as stored")
		} else {
			content = drafted
		}
	}

	opts := markdown.DefaultOptions()
	opts.WebURL = a.cfg.WebBaseURL
	rendered := markdown.RenderBytes(content, opts)

	if err := a.db.SaveMarkdownCache(ctx, n.ID, rendered); err != nil {
		return err
	}

	_, _ = os.Stdout.WriteString(rendered)

	a.logger.Info().Str("newsletter", n.ID.String()).Msg("markdown rendered and cached")

	return nil
}

// RunPublish posts the latest rendered issue to the configured channel.
func (a *App) RunPublish(ctx context.Context) error {
	if a.cfg.PublishDisabled {
		a.logger.Info().Msg("publishing disabled, skipping")

		return nil
	}

	if a.cfg.BotToken == "" || a.cfg.PublishChatID == 0 {
		return fmt.Errorf("publishing requires BOT_TOKEN and PUBLISH_CHAT_ID")
	}

	n, err := a.db.LatestNewsletter(ctx)
	if err != nil {
		return fmt.Errorf("load latest newsletter: %w", err)
	}

	// The channel gets the compact variant; the full issue lives on the web.
	rendered := markdown.RenderCompactBytes(n.Content)

	publisher, err := publish.New(a.cfg.BotToken, a.cfg.PublishChatID, *a.logger)
	if err != nil {
		return err
	}

	if err := publisher.Publish(ctx, rendered); err != nil {
		return err
	}

	return a.db.MarkPublished(ctx, n.ID)
}

func (a *App) draftSummaries(ctx context.Context, content []byte) ([]byte, error) {
	drafter := llm.NewDrafter(a.llmClient(), *a.logger)

	doc, err := drafter.DraftMissingSummaries(ctx, newsletter.Decode(content))
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

func (a *App) llmClient() llm.Client {
	if a.cfg.LLMAPIKey == "" {
		a.logger.Warn().Msg("no LLM api key configured, using mock drafter")

		return llm.NewMock()
	}

	return llm.NewOpenAI(a.cfg.LLMAPIKey, a.cfg.LLMModel, a.cfg.LLMRateLimitRPS, *a.logger)
}
