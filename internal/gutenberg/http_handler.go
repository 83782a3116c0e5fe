package gutenberg

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gutengate/internal/book"
	"gutengate/internal/gutendex"
	"gutengate/internal/httpx"
	"gutengate/internal/textstorage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /gutenberg/search?q={text}. The body is the bare
// array of books; an empty result is an empty array, not an error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	books, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("search error: %v", err)
		httpx.JSONDetail(w, http.StatusBadGateway, "catalog request failed")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Save handles POST /gutenberg/save/{bookId}?lang={targetLanguage}. On
// success the storage service's response body is returned unchanged.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// crude path param extraction with net/http's ServeMux
	// /gutenberg/save/{bookId}
	const prefix = "/gutenberg/save/"
	bookID := strings.TrimPrefix(r.URL.Path, prefix)
	if bookID == "" || strings.Contains(bookID, "/") {
		http.NotFound(w, r)
		return
	}

	params := SaveParams{
		BookID: bookID,
		Lang:   r.URL.Query().Get("lang"),
	}
	if details := ValidateStruct(params); details != nil {
		httpx.JSONDetail(w, http.StatusUnprocessableEntity, details[0].Message)
		return
	}

	resp, err := h.service.Save(r.Context(), params.BookID, params.Lang, r.Header.Get("Authorization"))
	if err != nil {
		writeSaveError(w, err)
		return
	}
	httpx.JSONRaw(w, http.StatusOK, resp)
}

func writeSaveError(w http.ResponseWriter, err error) {
	var apiErr *textstorage.APIError
	switch {
	case errors.As(err, &apiErr):
		// Authoritative pass-through: the storage service's status and
		// detail, verbatim.
		httpx.JSONDetail(w, apiErr.Status, apiErr.Detail)
	case errors.Is(err, book.ErrUnsupportedLanguage):
		httpx.JSONDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, gutendex.ErrNotFound), errors.Is(err, ErrUnusable):
		httpx.JSONDetail(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("save error: %v", err)
		httpx.JSONDetail(w, http.StatusBadGateway, "upstream request failed")
	}
}
