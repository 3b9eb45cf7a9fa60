package tempmail

import (
	"time"

	"github.com/tuamaeaquelaursa/client-go/internal/store"
)

// Message is a message delivered to a disposable mailbox.
type Message struct {
	ID        string
	From      string
	Recipient string
	Subject   string
	BodyHTML  string
	CreatedAt time.Time
}

// Document is a raw message document as returned by a Fetcher.
type Document = store.Document

// Value is a typed document field value.
type Value = store.Value

// Field names of a message document.
const (
	fieldFrom      = "from"
	fieldRecipient = "recipient"
	fieldSubject   = "subject"
	fieldBodyHTML  = "bodyHtml"
	fieldCreatedAt = "created_at"
)

// senderOf returns the from address of doc. The field must be a string.
func senderOf(doc *Document) (string, error) {
	if doc == nil {
		return "", &FieldError{Field: "fields"}
	}
	v, ok := doc.Field(fieldFrom)
	if !ok {
		return "", &FieldError{Document: doc.Name, Field: fieldFrom}
	}
	from, ok := v.String()
	if !ok {
		return "", &FieldError{Document: doc.Name, Field: fieldFrom + ".stringValue"}
	}
	return from, nil
}

// parseMessage converts a matched document into a Message. Every field must
// be present; string fields of another kind come through empty.
func parseMessage(doc *Document) (*Message, error) {
	from, err := senderOf(doc)
	if err != nil {
		return nil, err
	}

	text := func(name string) (string, error) {
		v, ok := doc.Field(name)
		if !ok {
			return "", &FieldError{Document: doc.Name, Field: name}
		}
		// A present field of another kind reads as "".
		s, _ := v.String()
		return s, nil
	}

	msg := &Message{
		ID:   doc.ID(),
		From: from,
	}
	if msg.Recipient, err = text(fieldRecipient); err != nil {
		return nil, err
	}
	if msg.Subject, err = text(fieldSubject); err != nil {
		return nil, err
	}
	if msg.BodyHTML, err = text(fieldBodyHTML); err != nil {
		return nil, err
	}

	created, ok := doc.Field(fieldCreatedAt)
	if !ok {
		return nil, &FieldError{Document: doc.Name, Field: fieldCreatedAt}
	}
	msg.CreatedAt = time.UnixMilli(created.IntegerValue)

	return msg, nil
}
