// Package jina implements the jina_reader and jina_search MCP tools
// backed by the Jina AI reader and search HTTP APIs.
package jina

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Default endpoints for the Jina APIs. The search and reader hosts are
// fixed by the upstream service.
const (
	ReaderEndpoint = "https://r.jina.ai/"
	SearchEndpoint = "https://s.jina.ai/"
)

// Client issues requests against the Jina reader and search APIs.
// The zero value is not usable; create one with NewClient.
type Client struct {
	ReaderURL  string
	SearchURL  string
	HTTPClient *http.Client
}

// NewClient creates a client pointed at the production Jina endpoints.
func NewClient() *Client {
	return &Client{
		ReaderURL:  ReaderEndpoint,
		SearchURL:  SearchEndpoint,
		HTTPClient: http.DefaultClient,
	}
}

// APIError represents a non-2xx response from a Jina API. The raw
// response body is carried verbatim so callers can surface exactly what
// the upstream said.
type APIError struct {
	API    string
	Status int
	Body   string
}

// Error formats the error as "Jina <API> API error (<status>): <body>".
func (e *APIError) Error() string {
	return fmt.Sprintf("Jina %s API error (%d): %s", e.API, e.Status, e.Body)
}

// ReadOptions holds the optional parameters for a reader request.
type ReadOptions struct {
	Format      string
	WithLinks   bool
	WithImages  bool
	UseReaderLM bool
}

// Read extracts the content of a web page through the Jina reader API.
// It returns the extracted content text, or the full response JSON
// pretty-printed when the upstream payload carries no content field.
func (c *Client) Read(ctx context.Context, pageURL string, opts ReadOptions) (string, error) {
	base := map[string]string{
		"Accept":                "application/json",
		"Content-Type":          "application/json",
		"X-Return-Format":       strings.ToLower(opts.Format),
		"X-With-Links-Summary":  strconv.FormatBool(opts.WithLinks),
		"X-With-Images-Summary": strconv.FormatBool(opts.WithImages),
		"X-With-Generated-Alt":  "true",
		"X-With-Iframe":         "true",
		"X-With-Shadow-Dom":     "true",
	}
	if opts.UseReaderLM {
		base["X-Respond-With"] = "readerlm-v2"
	}

	body, err := json.Marshal(map[string]string{"url": pageURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ReaderURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	for name, value := range buildHeaders(base) {
		req.Header.Set(name, value)
	}

	raw, err := c.do(req, "Reader")
	if err != nil {
		return "", err
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}

	if data, ok := payload["data"].(map[string]any); ok {
		if content, ok := data["content"].(string); ok {
			return content, nil
		}
	}

	// No content field; fall back to the whole payload so nothing the
	// upstream returned is lost.
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

// SearchOptions holds the optional parameters for a search request.
type SearchOptions struct {
	Count      int
	SiteFilter string
}

// Result is a single search result as returned by the Jina search API.
// Upstream fields not listed here (such as per-item usage accounting)
// are dropped during decoding.
type Result struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// Search queries the Jina search API and returns the result list in
// upstream order, truncated to opts.Count items when positive.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error) {
	base := map[string]string{
		"Accept":          "application/json",
		"X-Respond-With":  "no-content",
		"X-With-Favicons": "true",
	}
	if opts.SiteFilter != "" {
		// The upstream expects a full origin; the scheme is always https.
		base["X-Site"] = "https://" + opts.SiteFilter
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	for name, value := range buildHeaders(base) {
		req.Header.Set(name, value)
	}

	raw, err := c.do(req, "Search")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []Result `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	results := payload.Data
	if opts.Count > 0 && len(results) > opts.Count {
		results = results[:opts.Count]
	}
	return results, nil
}

// do executes the request and reads the full body. Non-2xx responses
// become an *APIError carrying the status and raw body.
func (c *Client) do(req *http.Request, api string) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{API: api, Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
