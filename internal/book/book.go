package book

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gutengate/internal/gutendex"
)

// Reject decisions, in evaluation order. The order matters for the
// diagnostic even though every rejection looks the same to a search
// caller.
var (
	ErrNotText     = errors.New("record is not a text")
	ErrCopyrighted = errors.New("record is under copyright")
	ErrNoPlainText = errors.New("record has no supported plain-text format")
)

// ErrMalformedRecord marks records missing fields the catalog contract
// requires. It is not a rejection: a rejection is a well-formed record
// the gateway refuses to serve.
var ErrMalformedRecord = errors.New("malformed catalog record")

// The catalog spells these keys with inconsistent spacing, e.g.
// "text/plain; charset=utf-8", so candidates are compared after dropping
// spaces and lower-casing.
var supportedFormats = map[string]bool{
	"text/plain":               true,
	"text/plain;charset=utf-8": true,
}

const coverFormat = "image/jpeg"

// Book is a catalog record the gateway is willing to serve. BookURL and
// CoverURL point at the configured content origin, never at whatever
// host the catalog reported.
type Book struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Author   string `json:"author"`
	BookURL  string `json:"bookUrl"`
	CoverURL string `json:"coverUrl,omitempty"`
}

// IsRejection reports whether err is one of the normalizer's reject
// decisions, as opposed to a malformed record.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNotText) ||
		errors.Is(err, ErrCopyrighted) ||
		errors.Is(err, ErrNoPlainText)
}

// Normalize turns a raw catalog record into a Book, or reports why the
// record cannot be served. origin is the trusted content origin every
// resource URL is rewritten onto.
func Normalize(rec gutendex.Record, origin string) (Book, error) {
	if rec.ID.String() == "" || rec.Title == "" || len(rec.Languages) == 0 || rec.MediaType == "" {
		return Book{}, fmt.Errorf("%w: id=%q title=%q", ErrMalformedRecord, rec.ID, rec.Title)
	}

	if strings.ToLower(strings.TrimSpace(rec.MediaType)) != "text" {
		return Book{}, ErrNotText
	}
	if rec.Copyright {
		return Book{}, ErrCopyrighted
	}

	link, ok := findSupportedFormat(rec.Formats)
	if !ok {
		return Book{}, ErrNoPlainText
	}
	bookURL, err := RewriteAuthority(link, origin)
	if err != nil {
		return Book{}, fmt.Errorf("%w: bad format URL %q", ErrMalformedRecord, link)
	}

	b := Book{
		ID:       rec.ID.String(),
		Title:    rec.Title,
		Language: rec.Languages[0],
		Author:   "unknown",
		BookURL:  bookURL,
	}
	if len(rec.Authors) > 0 {
		b.Author = rec.Authors[0].Name
	}
	if cover, ok := rec.Formats.Get(coverFormat); ok {
		if coverURL, err := RewriteAuthority(cover, origin); err == nil {
			b.CoverURL = coverURL
		}
	}
	return b, nil
}

// findSupportedFormat returns the URL of the first format entry, in
// source order, whose normalized MIME type the gateway supports.
func findSupportedFormat(formats gutendex.Formats) (string, bool) {
	for _, f := range formats {
		mime := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(f.MIME), " ", ""))
		if supportedFormats[mime] {
			return f.URL, true
		}
	}
	return "", false
}

// RewriteAuthority replaces a resource URL's scheme, host and port with
// the trusted origin, keeping the path byte-for-byte.
func RewriteAuthority(link, origin string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return origin + u.EscapedPath(), nil
}
