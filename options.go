package tempmail

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tuamaeaquelaursa/client-go/internal/delivery"
)

const (
	// DefaultWaitTimeout is how long WaitForMessage waits unless
	// WithWaitTimeout is given.
	DefaultWaitTimeout = 30 * time.Second

	// DefaultPollInterval is the delay between two inbox reads.
	DefaultPollInterval = delivery.DefaultPollInterval
)

// mailboxConfig holds configuration for mailbox creation.
type mailboxConfig struct {
	humanized  bool
	id         string
	fetcher    Fetcher
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// waitConfig holds configuration for waiting on messages.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures mailbox creation.
type Option func(*mailboxConfig)

// WaitOption configures message waiting.
type WaitOption func(*waitConfig)

// WithHumanized selects a readable name-adjective-animal identifier instead
// of a random token.
func WithHumanized(humanized bool) Option {
	return func(c *mailboxConfig) {
		c.humanized = humanized
	}
}

// WithID reuses an existing identifier instead of generating one.
// The address is still derived from Domain.
func WithID(id string) Option {
	return func(c *mailboxConfig) {
		c.id = id
	}
}

// WithFetcher replaces the message store client, e.g. with a test double.
// WithBaseURL and WithHTTPClient are ignored when a fetcher is set.
func WithFetcher(f Fetcher) Option {
	return func(c *mailboxConfig) {
		c.fetcher = f
	}
}

// WithBaseURL sets the message store endpoint.
func WithBaseURL(url string) Option {
	return func(c *mailboxConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client for the message store.
func WithHTTPClient(client *http.Client) Option {
	return func(c *mailboxConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger. The mailbox logs only at debug level.
// Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *mailboxConfig) {
		c.logger = logger
	}
}

// WithWaitTimeout sets how long to wait for a matching message.
// The deadline is checked after each unmatched inbox read.
// Default: 30 seconds
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the delay between inbox reads.
// Default: 1 second
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}
