package seo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const googlePingURL = "https://www.google.com/ping"

// Pinger notifies search engines that the sitemap changed. Failures are
// reported to the caller but never abort anything; submission is best effort.
type Pinger struct {
	client  *http.Client
	baseURL string
	pingURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPinger creates a Pinger with a bounded per-request timeout.
func NewPinger(baseURL string, timeout time.Duration, logger *zap.Logger) *Pinger {
	return &Pinger{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		pingURL: googlePingURL,
		timeout: timeout,
		logger:  logger,
	}
}

// Ping submits the sitemap URL to Google. A non-2xx response or transport
// error is returned but the caller is expected to log and move on.
func (p *Pinger) Ping(ctx context.Context) error {
	sitemapURL := fmt.Sprintf("%s/sitemap.xml", p.baseURL)
	target := fmt.Sprintf("%s?sitemap=%s", p.pingURL, url.QueryEscape(sitemapURL))

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sitemap ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sitemap ping returned status %d", resp.StatusCode)
	}

	p.logger.Info("Sitemap submitted to search engine", zap.String("sitemap", sitemapURL))
	return nil
}
