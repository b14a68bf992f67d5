// Package readability provides a keytopics.BodyExtractor backed by
// go-readability, for pages where the density walk picks up too much chrome.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/keytopics"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements keytopics.BodyExtractor at compile time.
var _ keytopics.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody returns the normalized article text of the page.
func (e *Extractor) ExtractBody(page *keytopics.Page) (string, error) {
	if page == nil || page.HTML == "" {
		return "", keytopics.Errorf(keytopics.EDOCUMENT, "empty HTML input")
	}

	var pageURL *url.URL
	if page.URL != "" {
		if u, err := url.Parse(page.URL); err == nil {
			pageURL = u
		}
	}

	article, err := readability.FromReader(strings.NewReader(page.HTML), pageURL)
	if err != nil {
		return "", keytopics.Errorf(keytopics.EPARSE, "readability: %v", err)
	}

	return keytopics.Normalize(article.TextContent), nil
}
