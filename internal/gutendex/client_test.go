package gutendex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
	"count": 2,
	"results": [
		{
			"id": 1,
			"title": "Maerchen",
			"authors": [{"name": "Hermann, Hesse"}],
			"languages": ["de"],
			"media_type": "Text",
			"copyright": false,
			"formats": {
				"text/plain; charset=utf-8": "http://url.local/1.txt",
				"image/jpeg": "http://url.local/1.jpeg"
			}
		},
		{
			"id": 2,
			"title": "Steppenwolf",
			"authors": [{"name": "Hermann, Hesse"}],
			"languages": ["en"],
			"media_type": "Text",
			"copyright": false,
			"formats": {"text/plain": "http://url.local/2.txt"}
		}
	]
}`

func TestClient_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books", r.URL.Path)
		gotQuery = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100)
	records, err := c.Search(context.Background(), "Hesse Steppenwolf")
	require.NoError(t, err)

	assert.Equal(t, "Hesse Steppenwolf", gotQuery)
	require.Len(t, records, 2)
	assert.Equal(t, "Maerchen", records[0].Title)
	// The formats object keeps its declared order.
	assert.Equal(t, "text/plain; charset=utf-8", records[0].Formats[0].MIME)
	assert.Equal(t, "image/jpeg", records[0].Formats[1].MIME)
}

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("ids"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": 2, "title": "Steppenwolf"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100)
	rec, err := c.Lookup(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Steppenwolf", rec.Title)
}

func TestClient_LookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 0, "results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100)
	_, err := c.Lookup(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100)
	_, err := c.Search(context.Background(), "Hesse")
	assert.ErrorContains(t, err, "unexpected status code: 502")
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, "Hesse")
	assert.Error(t, err)
}
