package book

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage means a language code has no entry in the
// storage service's vocabulary. Detected locally, before any downstream
// call.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// langCodes maps the two-letter codes the catalog reports onto the
// three-letter codes the text-storage service expects. No default entry:
// an unmapped code is an error, never a pass-through.
var langCodes = map[string]string{
	"bg": "bul",
	"cs": "ces",
	"da": "dan",
	"de": "deu",
	"el": "ell",
	"en": "eng",
	"es": "spa",
	"et": "est",
	"fi": "fin",
	"fr": "fra",
	"hu": "hun",
	"it": "ita",
	"js": "jpn",
	"lt": "lit",
	"lv": "lav",
	"nl": "nld",
	"pl": "pol",
	"pt": "por",
	"ro": "ron",
	"ru": "rus",
	"sk": "slk",
	"sl": "slv",
	"sv": "swe",
	"zh": "zho",
}

// LanguageCode resolves a catalog two-letter language code to the
// storage service's three-letter code.
func LanguageCode(code string) (string, error) {
	if c, ok := langCodes[code]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
