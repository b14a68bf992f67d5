package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/keytopics"
)

// Ensure LoggingParser implements keytopics.Parser.
var _ keytopics.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   keytopics.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next keytopics.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the extracted fields.
func (p *LoggingParser) Parse(html string) (page *keytopics.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			attrs = append(attrs,
				"title", page.Title,
				"headers", len(page.Headers),
			)
		}
		p.logger.Debug("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html)
}

// Ensure LoggingBodyExtractor implements keytopics.BodyExtractor.
var _ keytopics.BodyExtractor = (*LoggingBodyExtractor)(nil)

// LoggingBodyExtractor wraps a BodyExtractor with debug logging.
type LoggingBodyExtractor struct {
	next   keytopics.BodyExtractor
	name   string
	logger *slog.Logger
}

// NewLoggingBodyExtractor creates a new LoggingBodyExtractor. The name
// identifies the strategy in log output.
func NewLoggingBodyExtractor(next keytopics.BodyExtractor, name string, logger *slog.Logger) *LoggingBodyExtractor {
	return &LoggingBodyExtractor{next: next, name: name, logger: logger}
}

// ExtractBody delegates to the wrapped extractor and logs the body length.
func (e *LoggingBodyExtractor) ExtractBody(page *keytopics.Page) (body string, err error) {
	defer func(begin time.Time) {
		var url string
		if page != nil {
			url = page.URL
		}
		e.logger.Debug("extract body",
			"extractor", e.name,
			"url", url,
			"length", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractBody(page)
}
