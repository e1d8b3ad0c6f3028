// Package client is a typed HTTP client for the entry tracker API. It
// mirrors the data layer the web frontend runs on: plain CRUD calls
// plus an infinite-scroll feed (see EntryFeed).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type EntryType string

const (
	TypeMovie  EntryType = "MOVIE"
	TypeTVShow EntryType = "TV_SHOW"
)

// Entry matches the JSON the API returns. Budget is the decimal string
// the server stores; optional columns come back as null.
type Entry struct {
	ID        uint      `json:"id"`
	Type      EntryType `json:"type"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Director  *string   `json:"director"`
	Budget    *string   `json:"budget"`
	Location  *string   `json:"location"`
	Duration  *int      `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryForm is a create or update payload. Zero-valued required fields
// and nil optional fields are omitted, which is what makes partial
// updates work over PUT.
type EntryForm struct {
	Title    string    `json:"title,omitempty"`
	Type     EntryType `json:"type,omitempty"`
	Year     int       `json:"year,omitempty"`
	Director *string   `json:"director,omitempty"`
	Budget   *string   `json:"budget,omitempty"`
	Location *string   `json:"location,omitempty"`
	Duration *int      `json:"duration,omitempty"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedEntries struct {
	Data []Entry  `json:"data"`
	Meta PageMeta `json:"meta"`
}

type EntryStats struct {
	TotalEntries int64 `json:"totalEntries"`
	TotalMovies  int64 `json:"totalMovies"`
	TotalTvShows int64 `json:"totalTvShows"`
}

// APIError carries a decoded error response: the HTTP status, the
// server's message, and per-field validation messages when present.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListEntries(ctx context.Context, page, limit int) (*PaginatedEntries, error) {
	var out PaginatedEntries
	path := fmt.Sprintf("/api/entries?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEntry(ctx context.Context, form EntryForm) (*Entry, error) {
	var out Entry
	if err := c.do(ctx, http.MethodPost, "/api/entries", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id uint, form EntryForm) (*Entry, error) {
	var out Entry
	path := fmt.Sprintf("/api/entries/%d", id)
	if err := c.do(ctx, http.MethodPut, path, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/entries/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*EntryStats, error) {
	var out EntryStats
	if err := c.do(ctx, http.MethodGet, "/api/entries/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var body struct {
		Error   string              `json:"error"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Fields = body.Errors
	}
	return apiErr
}
