package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/keytopics"
	"github.com/fwojciec/keytopics/analyze"
	"github.com/fwojciec/keytopics/goquery"
	kthttp "github.com/fwojciec/keytopics/http"
	"github.com/fwojciec/keytopics/readability"
	ktslog "github.com/fwojciec/keytopics/slog"
	"github.com/fwojciec/keytopics/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, ErrorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for a URL when none is given on the command line.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("keytopics"),
		kong.Description("Find the relevant topics of web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	if err := cli.validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	stopWords := loadStopWords(cli.StopWords, logger)

	var fetcherOpts []kthttp.Option
	fetcherOpts = append(fetcherOpts, kthttp.WithTimeout(cli.Timeout))
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, kthttp.WithUserAgent(cli.UserAgent))
	}

	a := analyze.NewAnalyzer(
		ktslog.NewLoggingFetcher(kthttp.NewFetcher(fetcherOpts...), logger),
		ktslog.NewLoggingParser(goquery.NewParser(), logger),
		stopWords,
	)
	a.Body = ktslog.NewLoggingBodyExtractor(newBodyExtractor(cli.Body), cli.Body, logger)
	a.SignalWeight = cli.SignalWeight
	a.BodyWeight = cli.BodyWeight
	a.SourceLimit = cli.SourceLimit
	a.ResultLimit = cli.Limit
	a.Concurrency = cli.Concurrency
	a.Logger = logger
	if cli.Rate > 0 {
		a.RateLimiter = analyze.NewDomainLimiter(cli.Rate)
	}
	a.RetryDelays = analyze.RetryDelays(cli.Retries)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    m.Stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Analyzer: a,
	}

	cmd := &AnalyzeCmd{
		URLs:   cli.URLs,
		Scores: cli.Scores,
		JSON:   cli.JSON,
	}
	return cmd.Run(deps)
}

// newBodyExtractor returns the body extraction strategy named by the --body flag.
func newBodyExtractor(name string) keytopics.BodyExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return keytopics.NewDensityExtractor()
	}
}

// loadStopWords reads the stop-word file at path, or the built-in list when
// path is empty. A missing or empty file disables filtering with a warning.
func loadStopWords(path string, logger *slog.Logger) keytopics.StopWords {
	if path == "" {
		return keytopics.DefaultStopWords()
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("stop-word list unavailable, filtering disabled", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	sw, err := keytopics.ParseStopWords(f)
	if err != nil {
		logger.Warn("stop-word list unreadable, filtering disabled", "path", path, "err", err)
		return nil
	}
	if len(sw) == 0 {
		logger.Warn("stop-word list is empty, filtering disabled", "path", path)
	}
	return sw
}
