package content

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Client downloads book text from the content origin.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			// Full books can run to several megabytes.
			Timeout: 60 * time.Second,
		},
	}
}

// FetchText downloads rawURL and returns its body as UTF-8 text, decoded
// from whatever charset the response declares (UTF-8 when it declares
// none). Resources served under a .zip path are gzip-packed and are
// unpacked first.
func (c *Client) FetchText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if isZipPath(rawURL) {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("unpack %s: %w", rawURL, err)
		}
		defer zr.Close()
		body = zr
	}

	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	text, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func isZipPath(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Path, ".zip")
}
