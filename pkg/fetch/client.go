package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/selivandex/newspulse/pkg/logger"
)

// ErrExhausted is returned once every retry attempt has failed.
var ErrExhausted = errors.New("fetch: retries exhausted")

// StatusError reports a non-retryable HTTP status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: HTTP %d from %s", e.Code, e.URL)
}

// defaultUserAgents are rotated per request to look like ordinary browser
// traffic. Some providers reject the Go default agent outright.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36",
}

// Config controls retry and pacing behavior
type Config struct {
	MaxAttempts    int           // total attempts including the first, default 3
	BaseBackoff    time.Duration // first retry sleep, doubled per attempt
	MaxBackoff     time.Duration // cap on a single backoff sleep
	JitterFrac     float64       // +/- fraction applied to backoff sleeps
	AttemptTimeout time.Duration // per-attempt deadline
	RateLimitRPS   float64       // global limit across all callers, <=0 disables
	RetryStatuses  []int         // HTTP statuses retried, default 429/5xx set
	UserAgents     []string
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 500 * time.Millisecond
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 8 * time.Second
	}
	if c.JitterFrac <= 0 {
		c.JitterFrac = 0.2
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 10 * time.Second
	}
	if len(c.RetryStatuses) == 0 {
		c.RetryStatuses = []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		}
	}
	if len(c.UserAgents) == 0 {
		c.UserAgents = defaultUserAgents
	}
	return c
}

// Client wraps outbound HTTP GETs with bounded retry on transient failures.
// Safe for concurrent use; the underlying http.Client reuses connections.
type Client struct {
	cfg       Config
	http      *http.Client
	limiter   *rate.Limiter
	retryable map[int]bool
}

// NewClient creates a fetch client from config
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	retryable := make(map[int]bool, len(cfg.RetryStatuses))
	for _, code := range cfg.RetryStatuses {
		retryable[code] = true
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}

	return &Client{
		cfg:       cfg,
		http:      &http.Client{},
		limiter:   limiter,
		retryable: retryable,
	}
}

// Get fetches url, retrying transient failures with exponential backoff.
// Non-retryable statuses (404, 403, ...) fail immediately with a StatusError.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.GetWithHeaders(ctx, url, nil)
}

// GetWithHeaders is Get with extra request headers, used by adapters that need
// provider-specific headers on top of the rotated User-Agent.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, retryAgain, err := c.attempt(ctx, url, headers)
		if err == nil {
			return body, nil
		}
		if !retryAgain {
			return nil, err
		}
		lastErr = err

		if attempt == c.cfg.MaxAttempts {
			break
		}

		sleep := c.backoff(attempt)
		logger.Debug("fetch attempt failed, backing off",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Duration("sleep", sleep),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}

	return nil, fmt.Errorf("%w: %s: %v", ErrExhausted, url, lastErr)
}

// attempt performs one GET. The second return value reports whether the
// failure is transient and worth another attempt.
func (c *Client) attempt(ctx context.Context, url string, headers map[string]string) ([]byte, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.cfg.UserAgents[rand.IntN(len(c.cfg.UserAgents))])
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Connection errors and timeouts are transient unless the parent
		// context is already gone.
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{Code: resp.StatusCode, URL: url}
		return nil, c.retryable[resp.StatusCode], statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read body: %w", err)
	}

	return body, false, nil
}

// backoff computes the sleep before retrying after the given attempt,
// exponential in the attempt number with jitter, capped at MaxBackoff.
func (c *Client) backoff(attempt int) time.Duration {
	sleep := c.cfg.BaseBackoff << (attempt - 1)
	if sleep > c.cfg.MaxBackoff {
		sleep = c.cfg.MaxBackoff
	}

	jitter := 1 + c.cfg.JitterFrac*(2*rand.Float64()-1)
	return time.Duration(float64(sleep) * jitter)
}
