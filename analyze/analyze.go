// Package analyze provides topic-extraction orchestration. It coordinates
// fetching, parsing, body extraction and weighted ranking of web pages.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/keytopics"
	"golang.org/x/sync/errgroup"
)

// Ranking policy defaults.
const (
	DefaultSignalWeight = 3
	DefaultBodyWeight   = 1
	DefaultSourceLimit  = 10
	DefaultResultLimit  = 5
)

// Analyzer extracts the top topics of web pages.
type Analyzer struct {
	Fetcher keytopics.Fetcher
	Parser  keytopics.Parser

	// Body isolates page prose. Defaults to the density walk when nil.
	Body keytopics.BodyExtractor

	// StopWords are removed from both term sources. Nil filters nothing.
	StopWords keytopics.StopWords

	// SignalWeight multiplies title, keyword and header counts;
	// BodyWeight multiplies body counts.
	SignalWeight int
	BodyWeight   int

	// SourceLimit is how many top terms each source contributes to the
	// merge; ResultLimit is how many merged topics are returned.
	SourceLimit int
	ResultLimit int

	RateLimiter keytopics.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration

	// Logger receives retry warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewAnalyzer returns an Analyzer with the default ranking policy.
func NewAnalyzer(fetcher keytopics.Fetcher, parser keytopics.Parser, stopWords keytopics.StopWords) *Analyzer {
	return &Analyzer{
		Fetcher:      fetcher,
		Parser:       parser,
		Body:         keytopics.NewDensityExtractor(),
		StopWords:    stopWords,
		SignalWeight: DefaultSignalWeight,
		BodyWeight:   DefaultBodyWeight,
		SourceLimit:  DefaultSourceLimit,
		ResultLimit:  DefaultResultLimit,
		Concurrency:  1,
	}
}

// Result holds the outcome of analyzing a single page.
type Result struct {
	URL         string                 `json:"url"`
	Title       string                 `json:"title"`
	ContentHash string                 `json:"contentHash,omitempty"`
	Topics      keytopics.Distribution `json:"topics"`
	Err         error                  `json:"-"`
}

// Analyze validates, fetches and parses the page at rawURL and returns its
// top topics, highest score first.
//
// Errors carry EINVALID for a malformed URL, ERETRIEVAL for fetch failures,
// EPARSE for markup that cannot be parsed and EDOCUMENT for an unusable tree.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*Result, error) {
	if err := keytopics.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	html, err := a.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := a.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	page.URL = rawURL

	topics, err := a.RankPage(page)
	if err != nil {
		return nil, err
	}

	return &Result{
		URL:         rawURL,
		Title:       page.Title,
		ContentHash: ComputeHash(html),
		Topics:      topics,
	}, nil
}

// AnalyzeAll analyzes every distinct URL, running up to Concurrency pages
// at once. Results are returned in input order with duplicates removed. A
// failing page sets Result.Err and does not stop the others.
func (a *Analyzer) AnalyzeAll(ctx context.Context, urls []string) []*Result {
	urls = dedupe(urls)
	results := make([]*Result, len(urls))

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			result, err := a.Analyze(gctx, u)
			if err != nil {
				result = &Result{URL: u, Err: err}
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// RankPage extracts the body of page and ranks it against the page's
// signal text.
func (a *Analyzer) RankPage(page *keytopics.Page) (keytopics.Distribution, error) {
	if page == nil {
		return nil, keytopics.Errorf(keytopics.EDOCUMENT, "no page to rank")
	}

	body := a.Body
	if body == nil {
		body = keytopics.NewDensityExtractor()
	}
	bodyText, err := body.ExtractBody(page)
	if err != nil {
		return nil, err
	}

	return a.Rank(page.SignalText(), bodyText), nil
}

// Rank merges the top terms of signalText and bodyText, weighting each
// source, and returns the top ResultLimit topics highest score first.
// Blank tokens left by leading or trailing spaces are dropped before ranking.
func (a *Analyzer) Rank(signalText, bodyText string) keytopics.Distribution {
	signal := a.topTerms(signalText)
	body := a.topTerms(bodyText)

	merged := keytopics.Merge(signal, body, nil, a.SignalWeight, a.BodyWeight)
	return keytopics.TopN(keytopics.SortByScore(merged), a.resultLimit()).Reverse()
}

// topTerms returns the SourceLimit most frequent non-stop-word terms of
// text, ascending by score.
func (a *Analyzer) topTerms(text string) keytopics.Distribution {
	terms := keytopics.CountTerms(keytopics.Normalize(text)).Without("")
	terms = a.StopWords.Remove(terms)
	return keytopics.TopN(keytopics.SortByScore(terms), a.sourceLimit())
}

func (a *Analyzer) sourceLimit() int {
	if a.SourceLimit <= 0 {
		return DefaultSourceLimit
	}
	return a.SourceLimit
}

func (a *Analyzer) resultLimit() int {
	if a.ResultLimit <= 0 {
		return DefaultResultLimit
	}
	return a.ResultLimit
}

// fetch waits for the domain's rate limit and fetches rawURL with retries.
func (a *Analyzer) fetch(ctx context.Context, rawURL string) (string, error) {
	if a.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", keytopics.Errorf(keytopics.EINVALID, "entered URL is not valid: %q", rawURL)
		}
		if err := a.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
			return "", keytopics.Errorf(keytopics.ERETRIEVAL, "rate limit wait for %s: %v", rawURL, err)
		}
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return FetchWithRetryDelays(ctx, rawURL, a.Fetcher.Fetch, logger, a.RetryDelays)
}

// dedupe removes repeated URLs, keeping the first occurrence.
func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
