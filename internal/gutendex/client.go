package gutendex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound means the catalog has no record with the requested id.
var ErrNotFound = errors.New("book not found in catalog")

// Client talks to the Gutendex catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResponse matches the /books endpoint body.
type SearchResponse struct {
	Count   int      `json:"count"`
	Results []Record `json:"results"`
}

// Search runs a free-text query against the catalog.
func (c *Client) Search(ctx context.Context, query string) ([]Record, error) {
	u := fmt.Sprintf("%s/books?search=%s", c.baseURL, url.QueryEscape(query))

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

// Lookup fetches the single record with the given catalog id.
func (c *Client) Lookup(ctx context.Context, id string) (Record, error) {
	u := fmt.Sprintf("%s/books?ids=%s", c.baseURL, url.QueryEscape(id))

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return Record{}, err
	}
	if len(res.Results) == 0 {
		return Record{}, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	return res.Results[0], nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
