package mock

import "github.com/fwojciec/keytopics"

var _ keytopics.Parser = (*Parser)(nil)

// Parser is a mock implementation of keytopics.Parser.
type Parser struct {
	ParseFn func(html string) (*keytopics.Page, error)
}

func (p *Parser) Parse(html string) (*keytopics.Page, error) {
	return p.ParseFn(html)
}

var _ keytopics.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of keytopics.BodyExtractor.
type BodyExtractor struct {
	ExtractBodyFn func(page *keytopics.Page) (string, error)
}

func (e *BodyExtractor) ExtractBody(page *keytopics.Page) (string, error) {
	return e.ExtractBodyFn(page)
}
