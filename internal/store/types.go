package store

import (
	"strings"

	firestore "google.golang.org/api/firestore/v1"
)

// Document is a message document read from an inbox collection.
type Document struct {
	// Name is the full resource path, e.g.
	// projects/p/databases/(default)/documents/MAILBOXES/a@b/INBOX/<id>.
	Name   string
	Fields map[string]Value
}

// Value holds the typed value of a document field. Only the value kinds
// used by message documents are kept.
type Value struct {
	// StringValue is nil when the field is not a string.
	StringValue  *string
	IntegerValue int64
}

// ID returns the last segment of the document name.
func (d *Document) ID() string {
	return d.Name[strings.LastIndex(d.Name, "/")+1:]
}

// Field returns the named field and whether it is present.
func (d *Document) Field(name string) (Value, bool) {
	v, ok := d.Fields[name]
	return v, ok
}

// String returns the string value, or "" and false for non-string fields.
func (v Value) String() (string, bool) {
	if v.StringValue == nil {
		return "", false
	}
	return *v.StringValue, true
}

// StringPtr returns a pointer to s. Handy for building test documents.
func StringPtr(s string) *string {
	return &s
}

func fromFirestore(d *firestore.Document) *Document {
	doc := &Document{
		Name:   d.Name,
		Fields: make(map[string]Value, len(d.Fields)),
	}
	for k, v := range d.Fields {
		val := Value{IntegerValue: v.IntegerValue}
		if isStringKind(v) {
			s := v.StringValue
			val.StringValue = &s
		}
		doc.Fields[k] = val
	}
	return doc
}

// isStringKind reports whether v holds a string. The generated client drops
// the presence of stringValue, so a value is taken as a string when no other
// kind is set; {"stringValue": ""} therefore reads as the empty string.
func isStringKind(v firestore.Value) bool {
	return v.IntegerValue == 0 &&
		v.BooleanValue == nil &&
		v.DoubleValue == nil &&
		v.NullValue == "" &&
		v.TimestampValue == "" &&
		v.ReferenceValue == "" &&
		v.BytesValue == "" &&
		v.MapValue == nil &&
		v.ArrayValue == nil &&
		v.GeoPointValue == nil
}
