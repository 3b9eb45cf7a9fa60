// Package firestoretest provides an in-process fake of the Firestore REST
// list endpoint serving inbox documents, for use in tests.
package firestoretest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuamaeaquelaursa/client-go/internal/store"
)

// Message describes a delivered message. Zero ID gets a generated one.
type Message struct {
	ID        string
	From      string
	Recipient string
	Subject   string
	BodyHTML  string
	CreatedAt time.Time
}

type entry struct {
	doc         map[string]any
	visibleFrom int // first list call (1-based) that returns the entry
}

// Server is a fake message store. Create one with NewServer and point the
// store client at Endpoint().
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	inboxes  map[string][]entry
	calls    map[string]int
	status   int
	body     string
	pageSize int
}

// NewServer starts a fake store. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		inboxes: make(map[string][]entry),
		calls:   make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Endpoint returns the base URL to hand to the store client.
func (s *Server) Endpoint() string {
	return s.URL + "/"
}

// Deliver makes msg visible to every subsequent list of address.
func (s *Server) Deliver(address string, msg Message) string {
	return s.DeliverAfter(address, 0, msg)
}

// DeliverAfter makes msg visible starting with list call number calls+1
// for address. Calls already served are not counted again.
func (s *Server) DeliverAfter(address string, calls int, msg Message) string {
	if msg.ID == "" {
		msg.ID = NewDocumentID()
	}
	fields := map[string]any{
		"from":       stringValue(msg.From),
		"recipient":  stringValue(msg.Recipient),
		"subject":    stringValue(msg.Subject),
		"bodyHtml":   stringValue(msg.BodyHTML),
		"created_at": map[string]any{"integerValue": strconv.FormatInt(msg.CreatedAt.UnixMilli(), 10)},
	}
	s.DeliverRawAfter(address, calls, msg.ID, fields)
	return msg.ID
}

// DeliverRaw stores a document with arbitrary fields, e.g. one missing a
// required field.
func (s *Server) DeliverRaw(address, id string, fields map[string]any) {
	s.DeliverRawAfter(address, 0, id, fields)
}

// DeliverRawAfter is DeliverRaw with the visibility rule of DeliverAfter.
func (s *Server) DeliverRawAfter(address string, calls int, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]any{
		"name":       store.InboxParent(address) + "/" + store.InboxCollection + "/" + id,
		"fields":     fields,
		"createTime": time.Now().UTC().Format(time.RFC3339Nano),
		"updateTime": time.Now().UTC().Format(time.RFC3339Nano),
	}
	s.inboxes[address] = append(s.inboxes[address], entry{
		doc:         doc,
		visibleFrom: s.calls[address] + calls + 1,
	})
}

// FailWith makes every following request answer with status and body.
// A zero status restores normal responses.
func (s *Server) FailWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// SetPageSize splits list responses into pages of n documents.
func (s *Server) SetPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = n
}

// Calls returns how many list requests (first pages only) were served for address.
func (s *Server) Calls(address string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[address]
}

// NewDocumentID returns a Firestore-style 20 character document ID.
func NewDocumentID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

func stringValue(s string) map[string]any {
	return map[string]any{"stringValue": s}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	prefix := "/v1/" + store.InboxParent("")
	suffix := "/" + store.InboxCollection
	if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, prefix) || !strings.HasSuffix(r.URL.Path, suffix) {
		http.Error(w, `{"error":{"code":404,"message":"not found","status":"NOT_FOUND"}}`, http.StatusNotFound)
		return
	}
	address := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), suffix)
	pageToken := r.URL.Query().Get("pageToken")

	s.mu.Lock()
	if pageToken == "" {
		s.calls[address]++
	}
	call := s.calls[address]
	status, body, pageSize := s.status, s.body, s.pageSize

	var docs []map[string]any
	for _, e := range s.inboxes[address] {
		if call >= e.visibleFrom {
			docs = append(docs, e.doc)
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return
	}

	resp := map[string]any{}
	if pageSize > 0 {
		offset, _ := strconv.Atoi(pageToken)
		end := offset + pageSize
		if end < len(docs) {
			resp["nextPageToken"] = strconv.Itoa(end)
		} else {
			end = len(docs)
		}
		if offset < end {
			docs = docs[offset:end]
		} else {
			docs = nil
		}
	}
	// The real store omits the field entirely for an empty collection.
	if len(docs) > 0 {
		resp["documents"] = docs
	}
	_ = json.NewEncoder(w).Encode(resp)
}
