package gutenberg

import (
	"context"
	"encoding/json"

	"gutengate/internal/gutendex"
	"gutengate/internal/textstorage"
)

// Catalog is the slice of the Gutendex client the service depends on.
type Catalog interface {
	Search(ctx context.Context, query string) ([]gutendex.Record, error)
	Lookup(ctx context.Context, id string) (gutendex.Record, error)
}

// ContentFetcher downloads plain text from the content origin.
type ContentFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// TextStorage persists a downloaded book downstream.
type TextStorage interface {
	Create(ctx context.Context, text textstorage.NewText, authorization string) (json.RawMessage, error)
}
