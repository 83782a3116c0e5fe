package textstorage

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

// Client submits downloaded books to the text-storage service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewText is the creation payload of POST /text/create.
type NewText struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
	Content    string `json:"content"`
}

// APIError is a non-2xx answer from the storage service. Status and
// Detail are re-raised to the gateway caller verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("text storage: status %d: %s", e.Status, e.Detail)
}

// Create stores a new text, relaying the caller's own Authorization
// header. The gateway mints no credential of its own for this hop. The
// success body is returned unchanged.
func (c *Client) Create(ctx context.Context, text NewText, authorization string) (json.RawMessage, error) {
	payload, err := json.Marshal(text)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text/create", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authorization)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var e struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(body, &e)
		return nil, &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}
	return json.RawMessage(body), nil
}
