package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	requestTimeout = 15 * time.Second
	namePrefix     = "memos/"
)

// ErrMemoNotFound is returned when the Memos API answers 404.
var ErrMemoNotFound = errors.New("memo not found")

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodPost, "/api/v1/memos", req, &memo); err != nil {
		return nil, fmt.Errorf("memos create: %w", err)
	}
	return &memo, nil
}

// GetMemo fetches a single memo by its UID.
func (c *Client) GetMemo(ctx context.Context, uid string) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos/"+url.PathEscape(uid), nil, &memo); err != nil {
		return nil, fmt.Errorf("memos get: %w", err)
	}
	return &memo, nil
}

// ListMemos lists one page of memos matching filter (a Memos CEL expression, may be empty).
// The returned token is empty on the last page.
func (c *Client) ListMemos(ctx context.Context, filter string, pageSize int, pageToken string) ([]Memo, string, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	if filter != "" {
		q.Set("filter", filter)
	}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	var listResp struct {
		Memos         []Memo `json:"memos"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos?"+q.Encode(), nil, &listResp); err != nil {
		return nil, "", fmt.Errorf("memos list: %w", err)
	}
	return listResp.Memos, listResp.NextPageToken, nil
}

// UpdateMemo replaces the content of a memo.
func (c *Client) UpdateMemo(ctx context.Context, uid, content string) (*Memo, error) {
	var memo Memo
	path := "/api/v1/memos/" + url.PathEscape(uid) + "?updateMask=content"
	if err := c.do(ctx, http.MethodPatch, path, UpdateMemoRequest{Content: content}, &memo); err != nil {
		return nil, fmt.Errorf("memos update: %w", err)
	}
	return &memo, nil
}

// DeleteMemo deletes a memo by its UID.
func (c *Client) DeleteMemo(ctx context.Context, uid string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/memos/"+url.PathEscape(uid), nil, nil); err != nil {
		return fmt.Errorf("memos delete: %w", err)
	}
	return nil
}

// do sends an authenticated JSON request and decodes the reply into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrMemoNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{uid}.
type UpdateMemoRequest struct {
	Content string `json:"content"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"` // "memos/{uid}"
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

// uid returns the memo's short UID, falling back to the name suffix.
func (m Memo) uid() string {
	if m.UID != "" {
		return m.UID
	}
	return strings.TrimPrefix(m.Name, namePrefix)
}
