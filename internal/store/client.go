package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	firestore "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"
)

// Remote layout of the message store.
const (
	DefaultEndpoint     = "https://firestore.googleapis.com/"
	Project             = "temporary-email"
	Database            = "(default)"
	MailboxesCollection = "MAILBOXES"
	InboxCollection     = "INBOX"
)

// Client reads inbox documents from the message store.
type Client struct {
	svc    *firestore.Service
	logger *zap.Logger
}

type clientConfig struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures the store client.
type Option func(*clientConfig)

// WithEndpoint sets the Firestore REST endpoint.
func WithEndpoint(url string) Option {
	return func(c *clientConfig) {
		c.endpoint = url
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. Page fetches are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// New creates a store client. Requests are unauthenticated.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.httpClient == nil {
		cfg.httpClient = http.DefaultClient
	}

	svc, err := firestore.NewService(ctx,
		option.WithEndpoint(cfg.endpoint),
		option.WithHTTPClient(cfg.httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create firestore service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: cfg.logger,
	}, nil
}

// InboxParent returns the resource name of the mailbox document whose INBOX
// subcollection holds the messages delivered to address.
func InboxParent(address string) string {
	return fmt.Sprintf("projects/%s/databases/%s/documents/%s/%s",
		Project, Database, MailboxesCollection, address)
}

// ListInbox returns every document in the inbox of address, in the order the
// store returns them. All result pages are read. An inbox the store knows
// nothing about yields an empty slice.
func (c *Client) ListInbox(ctx context.Context, address string) ([]*Document, error) {
	parent := InboxParent(address)

	var docs []*Document
	page := 0
	err := c.svc.Projects.Databases.Documents.List(parent, InboxCollection).
		Pages(ctx, func(resp *firestore.ListDocumentsResponse) error {
			page++
			c.logger.Debug("inbox page fetched",
				zap.String("address", address),
				zap.Int("page", page),
				zap.Int("documents", len(resp.Documents)),
			)
			for _, d := range resp.Documents {
				if d == nil {
					continue
				}
				docs = append(docs, fromFirestore(d))
			}
			return nil
		})
	if err != nil {
		return nil, &RequestError{Parent: parent, Err: err}
	}

	if docs == nil {
		docs = []*Document{}
	}
	return docs, nil
}
