package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/keytopics"
	"github.com/fwojciec/keytopics/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer *analyze.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs         []string      `arg:"" optional:"" name:"url" help:"Web page URLs to analyze (prompted for when omitted)"`
	Limit        int           `short:"n" default:"5" env:"KEYTOPICS_LIMIT" help:"Number of topics to print per page"`
	SourceLimit  int           `default:"10" env:"KEYTOPICS_SOURCE_LIMIT" help:"Top terms taken from each source before merging"`
	SignalWeight int           `default:"3" env:"KEYTOPICS_SIGNAL_WEIGHT" help:"Weight of title, keyword and header terms"`
	BodyWeight   int           `default:"1" env:"KEYTOPICS_BODY_WEIGHT" help:"Weight of body terms"`
	Body         string        `default:"density" enum:"density,readability,trafilatura" env:"KEYTOPICS_BODY" help:"Body extraction strategy (density, readability, trafilatura)"`
	StopWords    string        `name:"stop-words" env:"KEYTOPICS_STOP_WORDS" help:"Newline-delimited stop-word file (default: built-in English list)"`
	Timeout      time.Duration `short:"t" default:"10s" env:"KEYTOPICS_TIMEOUT" help:"Fetch timeout per page"`
	UserAgent    string        `name:"user-agent" env:"KEYTOPICS_USER_AGENT" help:"User-Agent header sent with requests"`
	Retries      int           `default:"0" help:"Retries for failed fetches, with exponential backoff"`
	Concurrency  int           `short:"c" default:"1" help:"Pages analyzed at once"`
	Rate         float64       `default:"0" help:"Requests per second per domain (0 disables limiting)"`
	Scores       bool          `short:"s" help:"Print scores next to topics"`
	JSON         bool          `name:"json" help:"Print results as JSON"`
	Verbose      bool          `short:"v" help:"Log pipeline steps to stderr"`
}

// validate rejects flag values the ranking cannot work with.
func (c *CLI) validate() error {
	switch {
	case c.Limit <= 0:
		return keytopics.Errorf(keytopics.EINVALID, "--limit must be positive")
	case c.SourceLimit <= 0:
		return keytopics.Errorf(keytopics.EINVALID, "--source-limit must be positive")
	case c.SignalWeight < 0 || c.BodyWeight < 0:
		return keytopics.Errorf(keytopics.EINVALID, "weights must not be negative")
	case c.Retries < 0:
		return keytopics.Errorf(keytopics.EINVALID, "--retries must not be negative")
	case c.Rate < 0:
		return keytopics.Errorf(keytopics.EINVALID, "--rate must not be negative")
	}
	return nil
}

// AnalyzeCmd prints the topics of each URL.
type AnalyzeCmd struct {
	URLs   []string
	Scores bool
	JSON   bool
}
