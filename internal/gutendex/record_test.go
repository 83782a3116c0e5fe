package gutendex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormats_OrderPreserved(t *testing.T) {
	raw := `{
		"text/html": "http://url.local/3.html",
		"text/plain; charset=utf-8": "http://url.local/3.txt",
		"text/plain": "http://url.local/3-ascii.txt",
		"image/jpeg": "http://url.local/3.jpeg"
	}`

	var f Formats
	require.NoError(t, json.Unmarshal([]byte(raw), &f))

	require.Len(t, f, 4)
	assert.Equal(t, Formats{
		{MIME: "text/html", URL: "http://url.local/3.html"},
		{MIME: "text/plain; charset=utf-8", URL: "http://url.local/3.txt"},
		{MIME: "text/plain", URL: "http://url.local/3-ascii.txt"},
		{MIME: "image/jpeg", URL: "http://url.local/3.jpeg"},
	}, f)
}

func TestFormats_Null(t *testing.T) {
	var f Formats
	require.NoError(t, json.Unmarshal([]byte(`null`), &f))
	assert.Nil(t, f)
}

func TestFormats_RejectsNonObject(t *testing.T) {
	var f Formats
	assert.Error(t, json.Unmarshal([]byte(`["text/plain"]`), &f))
}

func TestFormats_Get(t *testing.T) {
	f := Formats{
		{MIME: "text/plain", URL: "http://url.local/3.txt"},
		{MIME: "image/jpeg", URL: "http://url.local/3.jpeg"},
	}

	link, ok := f.Get("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "http://url.local/3.jpeg", link)

	_, ok = f.Get("text/epub")
	assert.False(t, ok)
}

func TestRecord_Decode(t *testing.T) {
	raw := `{
		"id": 3,
		"title": "Steppenwolf",
		"authors": [{"name": "Hermann, Hesse"}],
		"languages": ["de"],
		"media_type": "Text",
		"copyright": false,
		"formats": {"text/plain": "http://url.local/3.txt"}
	}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "3", rec.ID.String())
	assert.Equal(t, "Steppenwolf", rec.Title)
	assert.Equal(t, []string{"de"}, rec.Languages)
	assert.Equal(t, "Text", rec.MediaType)
	assert.False(t, rec.Copyright)
	require.Len(t, rec.Formats, 1)
	assert.Equal(t, "text/plain", rec.Formats[0].MIME)
}
