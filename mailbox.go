package tempmail

import (
	"context"

	"go.uber.org/zap"

	"github.com/tuamaeaquelaursa/client-go/internal/identifier"
	"github.com/tuamaeaquelaursa/client-go/internal/store"
)

// Domain is the mail domain of every disposable address.
const Domain = "tuamaeaquelaursa.com"

// Fetcher reads the documents currently stored in the inbox of an address.
// Implementations must return documents in store order and must be safe
// for concurrent use.
type Fetcher interface {
	ListInbox(ctx context.Context, address string) ([]*Document, error)
}

// Mailbox is a disposable email address. The identifier and address are
// fixed at creation. Nothing is reserved on the store, so there is nothing
// to release when the mailbox is dropped.
type Mailbox struct {
	id      string
	email   string
	fetcher Fetcher
	logger  *zap.Logger
}

// Address returns the disposable address for an identifier.
func Address(id string) string {
	return id + "@" + Domain
}

// New creates a mailbox with a freshly generated identifier.
//
// With no options the identifier is a random 10-character base-36 token and
// messages are read from the public message store.
func New(opts ...Option) (*Mailbox, error) {
	cfg := &mailboxConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fetcher := cfg.fetcher
	if fetcher == nil {
		storeOpts := []store.Option{store.WithLogger(logger)}
		if cfg.baseURL != "" {
			storeOpts = append(storeOpts, store.WithEndpoint(cfg.baseURL))
		}
		if cfg.httpClient != nil {
			storeOpts = append(storeOpts, store.WithHTTPClient(cfg.httpClient))
		}
		client, err := store.New(context.Background(), storeOpts...)
		if err != nil {
			return nil, err //coverage:ignore
		}
		fetcher = client
	}

	id := cfg.id
	if id == "" {
		id = identifier.Generate(cfg.humanized)
	}

	m := &Mailbox{
		id:      id,
		email:   Address(id),
		fetcher: fetcher,
		logger:  logger,
	}
	logger.Debug("mailbox created", zap.String("address", m.email))
	return m, nil
}

// ID returns the local part of the address.
func (m *Mailbox) ID() string {
	return m.id
}

// Email returns the full disposable address.
func (m *Mailbox) Email() string {
	return m.email
}

// String returns the address.
func (m *Mailbox) String() string {
	return m.email
}
