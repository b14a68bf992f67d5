// Package trafilatura provides a keytopics.BodyExtractor backed by
// go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/keytopics"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements keytopics.BodyExtractor at compile time.
var _ keytopics.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody returns the normalized main text of the page.
func (e *Extractor) ExtractBody(page *keytopics.Page) (string, error) {
	if page == nil || page.HTML == "" {
		return "", keytopics.Errorf(keytopics.EDOCUMENT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if page.URL != "" {
		if u, err := url.Parse(page.URL); err == nil {
			opts.OriginalURL = u
		}
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return "", keytopics.Errorf(keytopics.EPARSE, "trafilatura: %v", err)
	}

	return keytopics.Normalize(result.ContentText), nil
}
