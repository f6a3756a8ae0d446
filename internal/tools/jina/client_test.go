package jina

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient returns a client pointed at the given stub for both APIs.
func newTestClient(upstream *httptest.Server) *Client {
	return &Client{
		ReaderURL:  upstream.URL,
		SearchURL:  upstream.URL,
		HTTPClient: upstream.Client(),
	}
}

func TestClientReadRequestShape(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	var gotMethod string
	var gotHeader http.Header
	var gotBody map[string]string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data":{"content":"ok"}}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.Read(context.Background(), "https://example.com", ReadOptions{
		Format:    FormatMarkdown,
		WithLinks: true,
	})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}

	if gotBody["url"] != "https://example.com" {
		t.Errorf("body url = %q, want https://example.com", gotBody["url"])
	}

	headerChecks := []struct {
		name string
		want string
	}{
		{"X-Return-Format", "markdown"},
		{"X-With-Links-Summary", "true"},
		{"X-With-Images-Summary", "false"},
		{"X-With-Generated-Alt", "true"},
		{"X-With-Iframe", "true"},
		{"X-With-Shadow-Dom", "true"},
		{"Accept", "application/json"},
		{"Content-Type", "application/json"},
	}
	for _, hc := range headerChecks {
		if got := gotHeader.Get(hc.name); got != hc.want {
			t.Errorf("header %s = %q, want %q", hc.name, got, hc.want)
		}
	}

	if _, ok := gotHeader["X-Respond-With"]; ok {
		t.Error("X-Respond-With must be omitted when useReaderLM is false")
	}

	if _, ok := gotHeader["Authorization"]; ok {
		t.Error("Authorization must be omitted when no key is configured")
	}
}

func TestClientReadWithReaderLMAndKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "jina_test_key_1234567890")

	var gotHeader http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header
		_, _ = w.Write([]byte(`{"data":{"content":"ok"}}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	if _, err := client.Read(context.Background(), "https://example.com", ReadOptions{
		Format:      FormatDefault,
		UseReaderLM: true,
	}); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got := gotHeader.Get("X-Respond-With"); got != "readerlm-v2" {
		t.Errorf("X-Respond-With = %q, want readerlm-v2", got)
	}

	if got := gotHeader.Get("Authorization"); got != "Bearer jina_test_key_1234567890" {
		t.Errorf("Authorization = %q, want Bearer jina_test_key_1234567890", got)
	}
}

func TestClientReadContent(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"content":"Hello"}}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	content, err := client.Read(context.Background(), "https://example.com", ReadOptions{Format: FormatDefault})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if content != "Hello" {
		t.Errorf("content = %q, want Hello", content)
	}
}

func TestClientReadFallbackJSON(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"status":"ok"}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	content, err := client.Read(context.Background(), "https://example.com", ReadOptions{Format: FormatDefault})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	// Payload without a content field comes back pretty-printed.
	if !strings.Contains(content, "\"status\": \"ok\"") {
		t.Errorf("expected 2-space indented JSON fallback, got %q", content)
	}
}

func TestClientReadAPIError(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.Read(context.Background(), "https://example.com", ReadOptions{Format: FormatDefault})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}

	want := "Jina Reader API error (401): invalid token"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestClientSearchRequestShape(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	var gotMethod, gotQuery string
	var gotHeader http.Header

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query().Get("q")
		gotHeader = r.Header
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	if _, err := client.Search(context.Background(), "golang generics", SearchOptions{
		Count:      5,
		SiteFilter: "go.dev",
	}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %s, want GET", gotMethod)
	}

	if gotQuery != "golang generics" {
		t.Errorf("q = %q, want %q", gotQuery, "golang generics")
	}

	headerChecks := []struct {
		name string
		want string
	}{
		{"Accept", "application/json"},
		{"X-Respond-With", "no-content"},
		{"X-With-Favicons", "true"},
		{"X-Site", "https://go.dev"},
	}
	for _, hc := range headerChecks {
		if got := gotHeader.Get(hc.name); got != hc.want {
			t.Errorf("header %s = %q, want %q", hc.name, got, hc.want)
		}
	}
}

func TestClientSearchOmitsSiteHeader(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	var gotHeader http.Header
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	if _, err := client.Search(context.Background(), "rust", SearchOptions{Count: 5}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if _, ok := gotHeader["X-Site"]; ok {
		t.Error("X-Site must be omitted when no site filter is given")
	}
}

func TestClientSearchTruncatesResults(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"title":"one","url":"https://a.example","description":"first"},
			{"title":"two","url":"https://b.example","description":"second"},
			{"title":"three","url":"https://c.example","description":"third"},
			{"title":"four","url":"https://d.example","description":"fourth"},
			{"title":"five","url":"https://e.example","description":"fifth"}
		]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	results, err := client.Search(context.Background(), "anything", SearchOptions{Count: 2})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if results[0].Title != "one" || results[1].Title != "two" {
		t.Errorf("results out of order: %v", results)
	}
}

func TestClientSearchDropsUsage(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"title":"one","url":"https://a.example","description":"first","usage":{"tokens":1000}}
		]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	results, err := client.Search(context.Background(), "anything", SearchOptions{Count: 5})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// The usage field has no representation on Result; formatting a
	// result must not leak it.
	if got := FormatResults(results, ReturnFormatMarkdown); strings.Contains(got, "usage") || strings.Contains(got, "tokens") {
		t.Errorf("usage leaked into formatted output: %q", got)
	}
}

func TestClientSearchMissingDataField(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	results, err := client.Search(context.Background(), "anything", SearchOptions{Count: 5})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestClientSearchAPIError(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	_, err := client.Search(context.Background(), "anything", SearchOptions{Count: 5})
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}

	want := "Jina Search API error (429): rate limited"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
