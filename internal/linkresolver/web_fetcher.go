// Package linkresolver resolves bare player link URLs into titled links
// by fetching the page and extracting its title and publish date.
package linkresolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxRedirects = 5
	maxBodySize  = 5 * 1024 * 1024
	fetchBurst   = 5
)

// WebFetcher performs rate-limited page fetches.
type WebFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewWebFetcher(rps float64, timeout time.Duration) *WebFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &WebFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects")
				}

				return nil
			},
		},
		limiter:   rate.NewLimiter(rate.Limit(rps), fetchBurst),
		userAgent: "LoanWatch/1.0 (Loanee Tracker)",
	}
}

// Fetch downloads one page body, capped at 5MB.
func (f *WebFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
