package gutendex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one catalog entry as Gutendex returns it.
type Record struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"title"`
	Authors   []Person    `json:"authors"`
	Languages []string    `json:"languages"`
	MediaType string      `json:"media_type"`
	Copyright bool        `json:"copyright"`
	Formats   Formats     `json:"formats"`
}

type Person struct {
	Name string `json:"name"`
}

// Format is one entry of a record's formats object: a MIME type key and
// the URL where that representation is served.
type Format struct {
	MIME string
	URL  string
}

// Formats keeps format entries in the order the JSON document declares
// them. Downstream format selection is first-match, so that order is part
// of the contract and a Go map cannot carry it.
type Formats []Format

func (f *Formats) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("formats: expected object, got %v", tok)
	}

	var out Formats
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("formats: non-string key %v", keyTok)
		}
		var link string
		if err := dec.Decode(&link); err != nil {
			return fmt.Errorf("formats[%q]: %w", key, err)
		}
		out = append(out, Format{MIME: key, URL: link})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = out
	return nil
}

func (f Formats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.MIME)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the URL stored under an exact MIME type key.
func (f Formats) Get(mime string) (string, bool) {
	for _, e := range f {
		if e.MIME == mime {
			return e.URL, true
		}
	}
	return "", false
}
