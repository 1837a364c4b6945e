package charts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fieldside/loanwatch/internal/platform/observability"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 2 * 1024 * 1024
	limiterBurst    = 5
)

// Client fetches chart data over HTTP with request rate limiting and an
// optional redis cache in front. Redis being down degrades to direct
// fetches, never to a render failure.
type Client struct {
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zerolog.Logger
}

// NewClient builds a Client against the stats backend base URL. cache may
// be nil to disable caching.
func NewClient(baseURL string, rps float64, cache *redis.Client, cacheTTL time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: defaultTimeout},
		limiter:  rate.NewLimiter(rate.Limit(rps), limiterBurst),
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, params Params) (*Data, error) {
	if cached := c.fromCache(ctx, params); cached != nil {
		observability.ChartFetches.WithLabelValues(observability.OutcomeCache).Inc()

		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	data, err := c.fetchRemote(ctx, params)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			observability.ChartFetches.WithLabelValues(observability.OutcomeEmpty).Inc()
		} else {
			observability.ChartFetches.WithLabelValues(observability.OutcomeError).Inc()
		}

		return nil, err
	}

	observability.ChartFetches.WithLabelValues(observability.OutcomeOK).Inc()
	c.toCache(ctx, params, data)

	return data, nil
}

func (c *Client) fetchRemote(ctx context.Context, params Params) (*Data, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("build chart request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chart data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoData
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart backend returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read chart response: %w", err)
	}

	var data Data
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}

	return &data, nil
}

func (c *Client) requestURL(params Params) string {
	q := url.Values{}
	q.Set("chart_type", params.ChartType)
	q.Set("date_range", params.DateRange)

	if len(params.StatKeys) > 0 {
		q.Set("stat_keys", strings.Join(params.StatKeys, ","))
	}

	if params.DateRange == RangeWeek {
		q.Set("week_start", params.WeekStart)
		q.Set("week_end", params.WeekEnd)
	}

	return fmt.Sprintf("%s/players/%s/charts?%s", c.baseURL, url.PathEscape(params.PlayerID), q.Encode())
}

func (c *Client) fromCache(ctx context.Context, params Params) *Data {
	if c.cache == nil {
		return nil
	}

	raw, err := c.cache.Get(ctx, params.CacheKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Debug().Err(err).Str("key", params.CacheKey()).Msg("chart cache read failed")
		}

		return nil
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	return &data
}

func (c *Client) toCache(ctx context.Context, params Params, data *Data) {
	if c.cache == nil || data == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, params.CacheKey(), raw, c.cacheTTL).Err(); err != nil && c.logger != nil {
		c.logger.Debug().Err(err).Str("key", params.CacheKey()).Msg("chart cache write failed")
	}
}
