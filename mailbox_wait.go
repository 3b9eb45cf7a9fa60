package tempmail

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/tuamaeaquelaursa/client-go/internal/delivery"
)

// WaitForMessage polls the inbox until a message whose sender contains
// sender arrives, and returns it.
//
// Each read fetches the whole inbox and takes the first document, in store
// order, whose from field contains sender. Matching is a case-sensitive
// substring test, so an empty sender matches any message. Messages are not
// consumed: a second wait returns the same message while it is stored.
//
// Errors:
//   - *TimeoutError if nothing matched within the wait timeout (default 30s).
//     The deadline is checked only after a read completes.
//   - *TransportError if a read failed or a document could not be parsed.
//     The wait ends on the first such failure.
//   - ctx.Err() if ctx is cancelled first.
//
// Example:
//
//	msg, err := mailbox.WaitForMessage(ctx, "noreply@shop.example.com",
//	    tempmail.WithWaitTimeout(2*time.Minute),
//	)
func (m *Mailbox) WaitForMessage(ctx context.Context, sender string, opts ...WaitOption) (*Message, error) {
	cfg := &waitConfig{
		timeout:      DefaultWaitTimeout,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := m.logger.With(zap.String("address", m.email), zap.String("sender", sender))

	fetch := func(ctx context.Context) ([]*Document, error) {
		docs, err := m.fetcher.ListInbox(ctx, m.email)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, &TransportError{Op: "fetch", Address: m.email, Err: err}
		}
		return docs, nil
	}

	match := func(doc *Document) (bool, error) {
		from, err := senderOf(doc)
		if err != nil {
			return false, &TransportError{Op: "parse", Address: m.email, Err: err}
		}
		return strings.Contains(from, sender), nil
	}

	doc, err := delivery.Wait(ctx, delivery.Config{
		Interval: cfg.pollInterval,
		Timeout:  cfg.timeout,
		Logger:   logger,
	}, fetch, match)
	if errors.Is(err, delivery.ErrDeadline) {
		return nil, &TimeoutError{Sender: sender, Timeout: cfg.timeout}
	}
	if err != nil {
		return nil, err
	}

	msg, err := parseMessage(doc)
	if err != nil {
		return nil, &TransportError{Op: "parse", Address: m.email, Err: err}
	}

	logger.Debug("message received", zap.String("id", msg.ID))
	return msg, nil
}
