package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/keytopics"
	"github.com/fwojciec/keytopics/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if len(urls) == 0 {
		u, err := promptURL(deps.Stdin, deps.Stdout)
		if err != nil {
			return err
		}
		urls = []string{u}
	}

	results := deps.Analyzer.AnalyzeAll(deps.Ctx, urls)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.URL, ErrorText(r.Err))
		}
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, results); err != nil {
			return err
		}
	} else {
		c.writeText(deps.Stdout, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	return nil
}

func (c *AnalyzeCmd) writeText(w io.Writer, results []*analyze.Result) {
	multi := len(results) > 1
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if multi {
			fmt.Fprintf(w, "\n%s\n", r.URL)
		}
		fmt.Fprintln(w, "Related topics/keywords of given web page")
		for _, t := range r.Topics {
			if c.Scores {
				fmt.Fprintf(w, "%s\t%d\n", t.Word, t.Score)
			} else {
				fmt.Fprintln(w, t.Word)
			}
		}
	}
}

// jsonResult is the JSON form of an analyze.Result.
type jsonResult struct {
	*analyze.Result
	Error string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, results []*analyze.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Result: r}
		if r.Err != nil {
			out[i].Error = ErrorText(r.Err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// promptURL asks for a single URL on stdin.
func promptURL(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, "Please enter the web page URL to get relevant topics")
	if stdin == nil {
		return "", keytopics.Errorf(keytopics.EINVALID, "no URL entered")
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read URL: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", keytopics.Errorf(keytopics.EINVALID, "no URL entered")
	}
	return line, nil
}

// ErrorText renders application errors by message and everything else in full.
// It is how main reports the error returned by Run.
func ErrorText(err error) string {
	if keytopics.ErrorCode(err) == keytopics.EINTERNAL {
		return err.Error()
	}
	return keytopics.ErrorMessage(err)
}
