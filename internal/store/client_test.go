package store_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/tuamaeaquelaursa/client-go/internal/firestoretest"
	"github.com/tuamaeaquelaursa/client-go/internal/store"
)

const testAddress = "k3v9q0zr2m@tuamaeaquelaursa.com"

func newTestClient(t *testing.T, srv *firestoretest.Server) *store.Client {
	t.Helper()

	c, err := store.New(context.Background(),
		store.WithEndpoint(srv.Endpoint()),
		store.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := store.New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c == nil {
		t.Fatal("New() returned nil client")
	}
}

func TestInboxParent(t *testing.T) {
	want := "projects/temporary-email/databases/(default)/documents/MAILBOXES/" + testAddress
	if got := store.InboxParent(testAddress); got != want {
		t.Errorf("InboxParent() = %q, want %q", got, want)
	}
}

func TestListInbox_Empty(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()

	docs, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("ListInbox() error = %v", err)
	}
	if docs == nil {
		t.Error("ListInbox() returned nil slice, want empty")
	}
	if len(docs) != 0 {
		t.Errorf("len(docs) = %d, want 0", len(docs))
	}
	if srv.Calls(testAddress) != 1 {
		t.Errorf("Calls() = %d, want 1", srv.Calls(testAddress))
	}
}

func TestListInbox_ConvertsFields(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()

	created := time.UnixMilli(1700000000123)
	id := srv.Deliver(testAddress, firestoretest.Message{
		From:      "noreply@shop.example.com",
		Recipient: testAddress,
		Subject:   "Your order",
		BodyHTML:  "<p>Thanks</p>",
		CreatedAt: created,
	})

	docs, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("ListInbox() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}

	doc := docs[0]
	if doc.ID() != id {
		t.Errorf("ID() = %q, want %q", doc.ID(), id)
	}
	if !strings.HasPrefix(doc.Name, store.InboxParent(testAddress)+"/INBOX/") {
		t.Errorf("Name = %q, want inbox document path", doc.Name)
	}

	from, ok := doc.Field("from")
	if !ok {
		t.Fatal("from field missing")
	}
	if s, _ := from.String(); s != "noreply@shop.example.com" {
		t.Errorf("from = %q, want %q", s, "noreply@shop.example.com")
	}

	createdAt, ok := doc.Field("created_at")
	if !ok {
		t.Fatal("created_at field missing")
	}
	if createdAt.IntegerValue != created.UnixMilli() {
		t.Errorf("created_at = %d, want %d", createdAt.IntegerValue, created.UnixMilli())
	}
	if _, ok := createdAt.String(); ok {
		t.Error("created_at should not be a string value")
	}
}

func TestListInbox_ValueKinds(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()

	srv.DeliverRaw(testAddress, "kinds", map[string]any{
		"from":       map[string]any{"integerValue": "42"},
		"subject":    map[string]any{"stringValue": ""},
		"created_at": map[string]any{"integerValue": "1700000000123"},
		"bodyHtml":   map[string]any{"booleanValue": true},
		"recipient":  map[string]any{"nullValue": "NULL_VALUE"},
	})

	docs, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("ListInbox() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}

	tests := []struct {
		field   string
		wantStr string
		wantOK  bool
		wantInt int64
	}{
		{"from", "", false, 42},
		{"subject", "", true, 0},
		{"created_at", "", false, 1700000000123},
		{"bodyHtml", "", false, 0},
		{"recipient", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			v, ok := docs[0].Field(tt.field)
			if !ok {
				t.Fatalf("%s field missing", tt.field)
			}
			s, isString := v.String()
			if isString != tt.wantOK || s != tt.wantStr {
				t.Errorf("String() = %q, %v, want %q, %v", s, isString, tt.wantStr, tt.wantOK)
			}
			if v.IntegerValue != tt.wantInt {
				t.Errorf("IntegerValue = %d, want %d", v.IntegerValue, tt.wantInt)
			}
		})
	}
}

func TestListInbox_PreservesOrder(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()

	first := srv.Deliver(testAddress, firestoretest.Message{From: "a@example.com"})
	second := srv.Deliver(testAddress, firestoretest.Message{From: "b@example.com"})

	docs, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("ListInbox() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if docs[0].ID() != first || docs[1].ID() != second {
		t.Errorf("order = [%s %s], want [%s %s]", docs[0].ID(), docs[1].ID(), first, second)
	}
}

func TestListInbox_FollowsPages(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()
	srv.SetPageSize(2)

	for i := 0; i < 5; i++ {
		srv.Deliver(testAddress, firestoretest.Message{From: "sender@example.com"})
	}

	docs, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("ListInbox() error = %v", err)
	}
	if len(docs) != 5 {
		t.Errorf("len(docs) = %d, want 5", len(docs))
	}
	if srv.Calls(testAddress) != 1 {
		t.Errorf("Calls() = %d, want 1 (continuation pages are not counted)", srv.Calls(testAddress))
	}
}

func TestListInbox_ServerError(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()
	srv.FailWith(http.StatusInternalServerError, `{"error":{"code":500,"message":"backend error","status":"INTERNAL"}}`)

	_, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	if err == nil {
		t.Fatal("ListInbox() error = nil, want error")
	}

	var reqErr *store.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *store.RequestError", err)
	}
	if reqErr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want 500", reqErr.StatusCode())
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		t.Errorf("underlying error should be *googleapi.Error, got %v", reqErr.Err)
	}
}

func TestListInbox_NotFound(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()
	srv.FailWith(http.StatusNotFound, `{"error":{"code":404,"message":"missing","status":"NOT_FOUND"}}`)

	_, err := newTestClient(t, srv).ListInbox(context.Background(), testAddress)
	var reqErr *store.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *store.RequestError", err)
	}
	if reqErr.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", reqErr.StatusCode())
	}
}

func TestListInbox_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents": [`))
	}))
	defer srv.Close()

	c, err := store.New(context.Background(),
		store.WithEndpoint(srv.URL+"/"),
		store.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.ListInbox(context.Background(), testAddress); err == nil {
		t.Error("ListInbox() error = nil, want decode error")
	}
}

func TestListInbox_NetworkError(t *testing.T) {
	srv := firestoretest.NewServer()
	endpoint := srv.Endpoint()
	srv.Close()

	c, err := store.New(context.Background(), store.WithEndpoint(endpoint))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.ListInbox(context.Background(), testAddress)
	if err == nil {
		t.Fatal("ListInbox() error = nil, want network error")
	}
	var reqErr *store.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *store.RequestError", err)
	}
	if reqErr.StatusCode() != 0 {
		t.Errorf("StatusCode() = %d, want 0", reqErr.StatusCode())
	}
}

func TestListInbox_ContextCancelled(t *testing.T) {
	srv := firestoretest.NewServer()
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv).ListInbox(ctx, testAddress)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDocument_ID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"projects/p/databases/(default)/documents/MAILBOXES/a@b/INBOX/abc123", "abc123"},
		{"abc123", "abc123"},
		{"trailing/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		d := &store.Document{Name: tt.name}
		if got := d.ID(); got != tt.want {
			t.Errorf("Document{Name: %q}.ID() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValue_String(t *testing.T) {
	v := store.Value{StringValue: store.StringPtr("")}
	if s, ok := v.String(); !ok || s != "" {
		t.Errorf("String() = (%q, %v), want (\"\", true)", s, ok)
	}
	if _, ok := (store.Value{IntegerValue: 3}).String(); ok {
		t.Error("integer value reported as string")
	}
}
