package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/megastudymobile/networkkit/errors"
)

func TestBuildRequestJoinsBaseAndPath(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"plain", "https://api.example.com", "/todos/1", "https://api.example.com/todos/1"},
		{"trailing_slash", "https://api.example.com/", "/todos/1", "https://api.example.com/todos/1"},
		{"no_leading_slash", "https://api.example.com", "todos/1", "https://api.example.com/todos/1"},
		{"path_is_full_url", "https://api.example.com", "https://other.example.com/x", "https://other.example.com/x"},
		{"empty_base_full_url", "", "https://api.example.com/todos", "https://api.example.com/todos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{BaseURL: tt.base, Timeout: time.Second}
			req, err := buildRequest(NewEndpoint(http.MethodGet, tt.path), &cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.URL != tt.want {
				t.Errorf("URL = %q, want %q", req.URL, tt.want)
			}
		})
	}
}

func TestBuildRequestInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
	}{
		{"bad_scheme", "://nope", "/todos"},
		{"not_absolute", "", "/todos"},
		{"relative", "api.example.com", "todos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{BaseURL: tt.base, Timeout: time.Second}
			_, err := buildRequest(NewEndpoint(http.MethodGet, tt.path), &cfg)
			if !errors.IsInvalidURL(err) {
				t.Errorf("expected invalid-URL error, got %v", err)
			}
		})
	}
}

func TestBuildRequestQueryOrderPreserved(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", Timeout: time.Second}
	spec := NewEndpoint(http.MethodGet, "/search",
		WithQuery("zeta", "1"),
		WithQuery("alpha", "2"),
		WithQuery("mid", "3"),
	)

	req, err := buildRequest(spec, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No implicit sorting: parameters appear in spec order.
	want := "https://api.example.com/search?zeta=1&alpha=2&mid=3"
	if req.URL != want {
		t.Errorf("URL = %q, want %q", req.URL, want)
	}
}

func TestBuildRequestQueryAppendsToExisting(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", Timeout: time.Second}
	spec := NewEndpoint(http.MethodGet, "/search?fixed=1", WithQuery("added", "2"))

	req, err := buildRequest(spec, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://api.example.com/search?fixed=1&added=2"
	if req.URL != want {
		t.Errorf("URL = %q, want %q", req.URL, want)
	}
}

func TestBuildRequestQueryEscaping(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", Timeout: time.Second}
	spec := NewEndpoint(http.MethodGet, "/search", WithQuery("q", "a b&c"))

	req, err := buildRequest(spec, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://api.example.com/search?q=a+b%26c"
	if req.URL != want {
		t.Errorf("URL = %q, want %q", req.URL, want)
	}
}

func TestBuildRequestHeaderMerge(t *testing.T) {
	cfg := Config{
		BaseURL: "https://api.example.com",
		Timeout: time.Second,
		Headers: map[string]string{
			"X":          "a",
			"X-Common":   "common",
			"User-Agent": "networkkit",
		},
	}
	spec := NewEndpoint(http.MethodGet, "/todos",
		WithHeader("X", "b"),
		WithHeader("X-Request", "only"),
	)

	req, err := buildRequest(spec, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The spec's value wins on collision.
	if got := req.Headers.Get("X"); got != "b" {
		t.Errorf("header X = %q, want %q", got, "b")
	}
	if got := req.Headers.Get("X-Common"); got != "common" {
		t.Errorf("header X-Common = %q, want %q", got, "common")
	}
	if got := req.Headers.Get("X-Request"); got != "only" {
		t.Errorf("header X-Request = %q, want %q", got, "only")
	}
	if got := req.Headers.Get("User-Agent"); got != "networkkit" {
		t.Errorf("header User-Agent = %q, want %q", got, "networkkit")
	}
}

func TestBuildRequestBodyAndTimeout(t *testing.T) {
	cfg := Config{BaseURL: "https://api.example.com", Timeout: 7 * time.Second}
	body := []byte(`{"title":"x"}`)
	spec := NewEndpoint(http.MethodPost, "/todos", WithBody(body))

	req, err := buildRequest(spec, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(req.Body) != string(body) {
		t.Errorf("body = %q, want %q", req.Body, body)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if req.Timeout != 7*time.Second {
		t.Errorf("timeout = %v, want 7s", req.Timeout)
	}
}
