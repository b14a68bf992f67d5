package keytopics

import (
	"slices"
	"strings"
	"unicode"
)

// Term is a token paired with its score. Depending on the stage the score is
// a raw occurrence count or a weighted sum of counts.
type Term struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Distribution is an ordered list of terms with unique words.
//
// Order carries no meaning for equality (see Counts) but it is preserved by
// every operation so that stable sorts break ties by first appearance.
type Distribution []Term

// Counts returns the distribution as a word to score map.
func (d Distribution) Counts() map[string]int {
	m := make(map[string]int, len(d))
	for _, t := range d {
		m[t.Word] = t.Score
	}
	return m
}

// Total returns the sum of all scores.
func (d Distribution) Total() int {
	var n int
	for _, t := range d {
		n += t.Score
	}
	return n
}

// Words returns the words in distribution order.
func (d Distribution) Words() []string {
	words := make([]string, len(d))
	for i, t := range d {
		words[i] = t.Word
	}
	return words
}

// Reverse returns a copy of the distribution in reverse order.
func (d Distribution) Reverse() Distribution {
	out := slices.Clone(d)
	slices.Reverse(out)
	return out
}

// Without returns a copy of the distribution with the given word removed.
func (d Distribution) Without(word string) Distribution {
	out := make(Distribution, 0, len(d))
	for _, t := range d {
		if t.Word != word {
			out = append(out, t)
		}
	}
	return out
}

// Normalize lowercases text and replaces every run of characters that are
// neither whitespace nor word characters with a single space. Underscores,
// newlines, tabs and carriage returns count as separators too. Runs of
// spaces collapse to one.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range strings.ToLower(text) {
		if isSeparator(r) {
			r = ' '
		}
		if r == ' ' {
			if space {
				continue
			}
			space = true
		} else {
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '\n', '\t', '\r':
		return true
	}
	return !isWordRune(r) && !unicode.IsSpace(r)
}

// isWordRune reports letters, digits and underscore. Combining marks are not
// word characters, so decomposed accents split a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// CollapseNonWord replaces every run of non-word characters, whitespace
// included, with a single space.
func CollapseNonWord(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	gap := false
	for _, r := range text {
		if isWordRune(r) {
			gap = false
			b.WriteRune(r)
			continue
		}
		if !gap {
			b.WriteByte(' ')
			gap = true
		}
	}
	return b.String()
}

// CountTerms splits text on the space character and counts each distinct
// token. Empty tokens produced by leading, trailing or doubled spaces are
// counted like any other token. Terms appear in order of first occurrence.
func CountTerms(text string) Distribution {
	index := make(map[string]int)
	var dist Distribution
	for _, word := range strings.Split(text, " ") {
		if i, ok := index[word]; ok {
			dist[i].Score++
			continue
		}
		index[word] = len(dist)
		dist = append(dist, Term{Word: word, Score: 1})
	}
	return dist
}

// SortByScore returns a copy of d sorted by ascending score. Terms with
// equal scores keep their relative order.
func SortByScore(d Distribution) Distribution {
	out := slices.Clone(d)
	slices.SortStableFunc(out, func(a, b Term) int {
		return a.Score - b.Score
	})
	return out
}

// TopN returns the last n terms of d, which are the n highest scoring terms
// when d is sorted ascending. The result keeps d's order.
func TopN(d Distribution, n int) Distribution {
	if n <= 0 {
		return Distribution{}
	}
	if n >= len(d) {
		return slices.Clone(d)
	}
	return slices.Clone(d[len(d)-n:])
}

// Merge combines up to three distributions into one. Primary scores are
// multiplied by wPrimary, secondary scores by wSecondary, tertiary scores are
// added unweighted. Every input word is present in the result, even when its
// combined score is zero. Words appear in order of first occurrence across
// primary, secondary and tertiary.
func Merge(primary, secondary, tertiary Distribution, wPrimary, wSecondary int) Distribution {
	index := make(map[string]int, len(primary)+len(secondary)+len(tertiary))
	out := make(Distribution, 0, len(primary)+len(secondary)+len(tertiary))
	add := func(d Distribution, weight int) {
		for _, t := range d {
			if i, ok := index[t.Word]; ok {
				out[i].Score += t.Score * weight
				continue
			}
			index[t.Word] = len(out)
			out = append(out, Term{Word: t.Word, Score: t.Score * weight})
		}
	}
	add(primary, wPrimary)
	add(secondary, wSecondary)
	add(tertiary, 1)
	return out
}
