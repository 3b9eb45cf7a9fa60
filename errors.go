package tempmail

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrTimeout is returned when no matching message arrives in time.
	ErrTimeout = errors.New("timeout waiting for message")

	// ErrTransport is returned when the message store cannot be read or its
	// response cannot be parsed.
	ErrTransport = errors.New("message store request failed")

	// ErrMissingField is returned when a message document lacks a field
	// needed to match or parse it.
	ErrMissingField = errors.New("message document is missing a field")
)

// MailboxError is implemented by all errors returned by this package.
type MailboxError interface {
	error
	MailboxError() // marker method
}

// TimeoutError is returned by WaitForMessage when no message from Sender
// was found within Timeout.
type TimeoutError struct {
	Sender  string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: no message from %q received within %v", e.Sender, e.Timeout)
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// MailboxError implements the MailboxError interface.
func (e *TimeoutError) MailboxError() {}

// TransportError wraps a failure to read or parse the inbox.
// Op is "fetch" for request failures and "parse" for document problems.
// The original error is available through errors.As and errors.Unwrap.
type TransportError struct {
	Op      string
	Address string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s inbox %s: %v", e.Op, e.Address, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MailboxError implements the MailboxError interface.
func (e *TransportError) MailboxError() {}

// FieldError reports a document without a required field.
type FieldError struct {
	Document string
	Field    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("document %s: missing field %q", e.Document, e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

// MailboxError implements the MailboxError interface.
func (e *FieldError) MailboxError() {}
