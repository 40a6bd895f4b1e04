package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 spress-import"
	DefaultMaxBodyBytes = 64 << 20

	maxRedirects       = 5
	retryBackoffFactor = 2
	maxRetryDelay      = 30 * time.Second
)

type Config struct {
	Timeout      time.Duration
	UserAgent    string
	MaxRetries   int
	RetryDelay   time.Duration
	MaxBodyBytes int64
}

// Client downloads binary resources referenced by imported content
type Client struct {
	httpClient   *http.Client
	userAgent    string
	maxRetries   int
	retryDelay   time.Duration
	maxBodyBytes int64
}

// NewClient creates a resource client. Zero values in cfg fall back to defaults;
// every request is bounded by the timeout.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return ErrTooManyRedirects
				}
				return nil
			},
		},
		userAgent:    cfg.UserAgent,
		maxRetries:   cfg.MaxRetries,
		retryDelay:   cfg.RetryDelay,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Fetch downloads the resource at rawURL. Rate limits and server errors are
// retried with exponential backoff up to MaxRetries times.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	log := zerolog.Ctx(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.calculateRetryDelay(attempt)
			log.Debug().Str("url", rawURL).Int("attempt", attempt).Dur("delay", delay).Msg("Retrying resource download")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		data, err := c.doRequest(ctx, rawURL)
		if err == nil {
			return data, nil
		}
		lastErr = err

		var statusErr *StatusError
		if !errors.As(err, &statusErr) || !statusErr.Retryable() {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(data)) > c.maxBodyBytes {
		return nil, ErrResourceTooLarge
	}

	return data, nil
}

func (c *Client) calculateRetryDelay(attempt int) time.Duration {
	delay := c.retryDelay
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(retryBackoffFactor)
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}
