package keytopics

import (
	"bufio"
	_ "embed"
	"io"
	"strings"
)

//go:embed stopwords.txt
var defaultStopWords string

// StopWords is a set of words excluded from ranking. A nil or empty set
// filters nothing.
type StopWords map[string]struct{}

// DefaultStopWords returns the built-in English stop-word list.
func DefaultStopWords() StopWords {
	sw, _ := ParseStopWords(strings.NewReader(defaultStopWords))
	return sw
}

// ParseStopWords reads a newline-delimited list, one word per line. The line
// terminator is stripped; nothing else is trimmed.
func ParseStopWords(r io.Reader) (StopWords, error) {
	sw := make(StopWords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sw[scanner.Text()] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sw, nil
}

// Contains reports whether word is a stop word.
func (sw StopWords) Contains(word string) bool {
	_, ok := sw[word]
	return ok
}

// Remove returns the terms of d whose word is not a stop word, in their
// original order.
func (sw StopWords) Remove(d Distribution) Distribution {
	out := make(Distribution, 0, len(d))
	for _, t := range d {
		if !sw.Contains(t.Word) {
			out = append(out, t)
		}
	}
	return out
}
