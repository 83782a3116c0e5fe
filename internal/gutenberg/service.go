package gutenberg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gutengate/internal/book"
	"gutengate/internal/textstorage"
)

// ErrUnusable marks a looked-up record the normalizer refused: the book
// exists in the catalog but has no edition the gateway can serve.
var ErrUnusable = errors.New("book has no usable plain-text edition")

// Service orchestrates catalog lookup, content download and storage
// submission. It holds no per-request state; one instance serves all
// requests concurrently.
type Service struct {
	catalog Catalog
	content ContentFetcher
	storage TextStorage
	origin  string // trusted content origin, e.g. https://gutenberg.org
}

func NewService(catalog Catalog, content ContentFetcher, storage TextStorage, origin string) *Service {
	return &Service{
		catalog: catalog,
		content: content,
		storage: storage,
		origin:  origin,
	}
}

// Search queries the catalog and returns the records the gateway can
// serve. Records the normalizer rejects are dropped, not surfaced; a
// malformed record fails the whole search.
func (s *Service) Search(ctx context.Context, query string) ([]book.Book, error) {
	records, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	books := make([]book.Book, 0, len(records))
	for _, rec := range records {
		b, err := book.Normalize(rec, s.origin)
		if err != nil {
			if book.IsRejection(err) {
				log.Printf("search skip id=%s reason=%v", rec.ID, err)
				continue
			}
			return nil, fmt.Errorf("catalog search: %w", err)
		}
		books = append(books, b)
	}

	log.Printf("search books=%d query=%q", len(books), query)
	return books, nil
}

// Save looks a book up by id, downloads its text and submits it to the
// text-storage service. authorization is the caller's own credential,
// relayed downstream unchanged. Steps run strictly in order and every
// failure is terminal; nothing is retried.
func (s *Service) Save(ctx context.Context, bookID, targetLang, authorization string) (json.RawMessage, error) {
	rec, err := s.catalog.Lookup(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}

	b, err := book.Normalize(rec, s.origin)
	if err != nil {
		if book.IsRejection(err) {
			return nil, fmt.Errorf("%w: book %s (%v)", ErrUnusable, bookID, err)
		}
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}

	content, err := s.content.FetchText(ctx, b.BookURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", b.BookURL, err)
	}

	sourceLang, err := book.LanguageCode(b.Language)
	if err != nil {
		return nil, err
	}
	targetCode, err := book.LanguageCode(targetLang)
	if err != nil {
		return nil, err
	}

	resp, err := s.storage.Create(ctx, textstorage.NewText{
		Title:      b.Title,
		Author:     b.Author,
		SourceLang: sourceLang,
		TargetLang: targetCode,
		Content:    content,
	}, authorization)
	if err != nil {
		log.Printf("save failed book=%s err=%v", bookID, err)
		return nil, err
	}

	log.Printf("save ok book=%s title=%q", bookID, b.Title)
	return resp, nil
}
