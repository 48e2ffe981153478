package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/megastudymobile/networkkit/transport"
)

func newReq() *transport.Request {
	return &transport.Request{
		URL:     "https://api.example.com/todos",
		Method:  http.MethodGet,
		Headers: http.Header{},
	}
}

func TestBearer(t *testing.T) {
	req, err := Bearer("tok-123").Adapt(context.Background(), newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Headers.Get("Authorization"); got != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", got)
	}
}

func TestBasic(t *testing.T) {
	req, err := Basic("alice", "s3cret").Adapt(context.Background(), newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:s3cret"))
	if got := req.Headers.Get("Authorization"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAPIKeyHeader(t *testing.T) {
	req, err := APIKey("key-1").Adapt(context.Background(), newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Headers.Get("X-API-Key"); got != "key-1" {
		t.Errorf("expected default header, got %q", got)
	}

	req, err = APIKeyHeader("key-2", "X-Custom-Key").Adapt(context.Background(), newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Headers.Get("X-Custom-Key"); got != "key-2" {
		t.Errorf("expected custom header, got %q", got)
	}
}

func TestAPIKeyQuery(t *testing.T) {
	req, err := APIKeyQuery("key-3", "api_key").Adapt(context.Background(), newReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://api.example.com/todos?api_key=key-3" {
		t.Errorf("expected key in query, got %q", req.URL)
	}
}

func TestAPIKeyQueryKeepsExistingParamOrder(t *testing.T) {
	req := newReq()
	req.URL = "https://api.example.com/todos?zeta=1&alpha=2"

	req, err := APIKeyQuery("k", "api_key").Adapt(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "https://api.example.com/todos?zeta=1&alpha=2&api_key=k" {
		t.Errorf("expected key appended without reordering, got %q", req.URL)
	}
}
