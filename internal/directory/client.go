// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/people-api/internal/httputil"
	"github.com/pdiddy/people-api/pkg/types"
)

// DefaultURL is the Portal people search endpoint.
const DefaultURL = "https://portal.cca.edu/search/people/_search"

// maxErrorBody bounds how much of a failed response is kept for reporting.
const maxErrorBody = 4 << 10

// StatusError reports a non-200 answer from the index.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("directory returned HTTP %d", e.StatusCode)
}

// Fetcher returns the people matching a query, in index order.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]types.RawPerson, error)
}

// Client talks to the people index over HTTP.
type Client struct {
	HTTP       *http.Client
	URL        string
	Token      string
	UserAgent  string
	MaxRetries int
}

// NewClient builds a Client from directory settings.
func NewClient(cfg types.DirectoryConfig) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		URL:        url,
		Token:      cfg.Token,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

// FetchRaw posts q and returns the undecoded response body.
func (c *Client) FetchRaw(ctx context.Context, q Query) ([]byte, error) {
	body, err := q.Body()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading directory response: %w", err)
	}
	return data, nil
}

// Fetch posts q and decodes the hits.
func (c *Client) Fetch(ctx context.Context, q Query) ([]types.RawPerson, error) {
	data, err := c.FetchRaw(ctx, q)
	if err != nil {
		return nil, err
	}
	return DecodeHits(data)
}

// Response JSON structures.
type searchResponse struct {
	Hits struct {
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

type searchHit struct {
	Source types.RawPerson `json:"_source"`
}

// DecodeHits extracts the person documents from a search response body.
func DecodeHits(data []byte) ([]types.RawPerson, error) {
	var sr searchResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, fmt.Errorf("parsing directory response: %w", err)
	}
	people := make([]types.RawPerson, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		people = append(people, h.Source)
	}
	return people, nil
}
