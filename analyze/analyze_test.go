package analyze_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fwojciec/keytopics"
	"github.com/fwojciec/keytopics/analyze"
	"github.com/fwojciec/keytopics/goquery"
	kthttp "github.com/fwojciec/keytopics/http"
	"github.com/fwojciec/keytopics/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipesHTML = `<!DOCTYPE html>
<html>
<head>
<title>Best Cooking Recipes</title>
<meta name="keywords" content="food,cooking">
</head>
<body><div><p>Today we cook pasta and bread</p></div></body>
</html>`

func TestAnalyzer_Rank(t *testing.T) {
	t.Parallel()

	t.Run("signal terms outrank body terms", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, keytopics.DefaultStopWords())

		got := a.Rank("best cooking recipes food cooking", "today we cook pasta and bread ")

		assert.Equal(t, keytopics.Distribution{
			{Word: "cooking", Score: 6},
			{Word: "food", Score: 3},
			{Word: "recipes", Score: 3},
			{Word: "best", Score: 3},
			{Word: "bread", Score: 1},
		}, got)
	})

	t.Run("a term in both sources sums its weighted counts", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)

		got := a.Rank("pasta", "pasta pasta sauce")

		assert.Equal(t, keytopics.Distribution{
			{Word: "pasta", Score: 5},
			{Word: "sauce", Score: 1},
		}, got)
	})

	t.Run("blank tokens never rank", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)

		got := a.Rank("  ", "  pasta  ")

		assert.Equal(t, []string{"pasta"}, got.Words())
	})

	t.Run("each source contributes at most SourceLimit terms", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)
		a.SourceLimit = 2
		a.ResultLimit = 10

		got := a.Rank("", "a a a b b c d")

		assert.Equal(t, []string{"a", "b"}, got.Words())
	})

	t.Run("custom weights", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)
		a.SignalWeight = 1
		a.BodyWeight = 10

		got := a.Rank("title", "body")

		assert.Equal(t, keytopics.Distribution{{Word: "body", Score: 10}, {Word: "title", Score: 1}}, got)
	})

	t.Run("no stop words filters nothing", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)

		got := a.Rank("the", "")

		assert.Equal(t, []string{"the"}, got.Words())
	})
}

func TestAnalyzer_RankPage(t *testing.T) {
	t.Parallel()

	t.Run("uses the configured body extractor", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)
		a.Body = &mock.BodyExtractor{
			ExtractBodyFn: func(page *keytopics.Page) (string, error) {
				return "sourdough sourdough", nil
			},
		}

		got, err := a.RankPage(&keytopics.Page{Title: "bread"})

		require.NoError(t, err)
		assert.Equal(t, keytopics.Distribution{{Word: "bread", Score: 3}, {Word: "sourdough", Score: 2}}, got)
	})

	t.Run("propagates body extraction errors", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(nil, nil, nil)

		_, err := a.RankPage(&keytopics.Page{})

		assert.Equal(t, keytopics.EDOCUMENT, keytopics.ErrorCode(err))
	})

	t.Run("nil page is an invalid document", func(t *testing.T) {
		t.Parallel()

		_, err := analyze.NewAnalyzer(nil, nil, nil).RankPage(nil)

		assert.Equal(t, keytopics.EDOCUMENT, keytopics.ErrorCode(err))
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("fetches parses and ranks a page end to end", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(recipesHTML))
		}))
		defer server.Close()

		a := analyze.NewAnalyzer(kthttp.NewFetcher(), goquery.NewParser(), keytopics.DefaultStopWords())

		result, err := a.Analyze(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, server.URL, result.URL)
		assert.Equal(t, "best cooking recipes", result.Title)
		assert.Equal(t, analyze.ComputeHash(recipesHTML), result.ContentHash)
		assert.Equal(t, []string{"cooking", "food", "recipes", "best", "bread"}, result.Topics.Words())
	})

	t.Run("invalid URL is rejected before fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}
		a := analyze.NewAnalyzer(fetcher, goquery.NewParser(), nil)

		_, err := a.Analyze(context.Background(), "not a url")

		require.Error(t, err)
		assert.Equal(t, keytopics.EINVALID, keytopics.ErrorCode(err))
	})

	t.Run("fetch failures are retrieval errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", keytopics.Errorf(keytopics.ERETRIEVAL, "timeout")
			},
		}
		a := analyze.NewAnalyzer(fetcher, goquery.NewParser(), nil)

		_, err := a.Analyze(context.Background(), "https://example.com")

		assert.Equal(t, keytopics.ERETRIEVAL, keytopics.ErrorCode(err))
	})

	t.Run("parse failures are parse errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>", nil
			},
		}
		parser := &mock.Parser{
			ParseFn: func(html string) (*keytopics.Page, error) {
				return nil, keytopics.Errorf(keytopics.EPARSE, "unable to parse")
			},
		}
		a := analyze.NewAnalyzer(fetcher, parser, nil)

		_, err := a.Analyze(context.Background(), "https://example.com")

		assert.Equal(t, keytopics.EPARSE, keytopics.ErrorCode(err))
	})

	t.Run("waits on the rate limiter with the URL host", func(t *testing.T) {
		t.Parallel()

		var domain string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return recipesHTML, nil
			},
		}
		a := analyze.NewAnalyzer(fetcher, goquery.NewParser(), nil)
		a.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				domain = d
				return nil
			},
		}

		_, err := a.Analyze(context.Background(), "https://example.com:8443/recipes")

		require.NoError(t, err)
		assert.Equal(t, "example.com", domain)
	})

	t.Run("rate limiter failure is a retrieval error", func(t *testing.T) {
		t.Parallel()

		a := analyze.NewAnalyzer(&mock.Fetcher{}, goquery.NewParser(), nil)
		a.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				return context.Canceled
			},
		}

		_, err := a.Analyze(context.Background(), "https://example.com")

		assert.Equal(t, keytopics.ERETRIEVAL, keytopics.ErrorCode(err))
	})
}

func TestAnalyzer_AnalyzeAll(t *testing.T) {
	t.Parallel()

	t.Run("returns results in input order without duplicates", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		fetched := map[string]int{}
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				mu.Lock()
				fetched[url]++
				mu.Unlock()
				if url == "https://broken.example.com" {
					return "", keytopics.Errorf(keytopics.ERETRIEVAL, "connection refused")
				}
				return recipesHTML, nil
			},
		}
		a := analyze.NewAnalyzer(fetcher, goquery.NewParser(), keytopics.DefaultStopWords())
		a.Concurrency = 3

		results := a.AnalyzeAll(context.Background(), []string{
			"https://a.example.com",
			"https://broken.example.com",
			"not a url",
			"https://a.example.com",
			"https://b.example.com",
		})

		require.Len(t, results, 4)
		assert.Equal(t, "https://a.example.com", results[0].URL)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, "cooking", results[0].Topics[0].Word)

		assert.Equal(t, "https://broken.example.com", results[1].URL)
		assert.Equal(t, keytopics.ERETRIEVAL, keytopics.ErrorCode(results[1].Err))

		assert.Equal(t, "not a url", results[2].URL)
		assert.Equal(t, keytopics.EINVALID, keytopics.ErrorCode(results[2].Err))

		assert.Equal(t, "https://b.example.com", results[3].URL)
		assert.NoError(t, results[3].Err)

		assert.Equal(t, 1, fetched["https://a.example.com"])
	})

	t.Run("non-application errors are reported per page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("boom")
			},
		}
		a := analyze.NewAnalyzer(fetcher, goquery.NewParser(), nil)

		results := a.AnalyzeAll(context.Background(), []string{"https://example.com"})

		require.Len(t, results, 1)
		assert.EqualError(t, results[0].Err, "boom")
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, analyze.ComputeHash("same"), analyze.ComputeHash("same"))
	assert.NotEqual(t, analyze.ComputeHash("one"), analyze.ComputeHash("two"))
}
