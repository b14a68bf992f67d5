package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/keytopics"
)

// headerTags are the heading levels contributing to signal text.
var headerTags = []string{"h1", "h2", "h3", "h4"}

// Title returns the normalized text of the first <title>, or "" if absent.
func Title(doc *goquery.Document) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return ""
	}
	return keytopics.CollapseNonWord(keytopics.Normalize(title.Text()))
}

// MetaContent returns the normalized content attribute of the first
// <meta name="..."> tag, or "" if the tag or attribute is absent.
func MetaContent(doc *goquery.Document, name string) string {
	var content string
	doc.Find("meta[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, _ := sel.Attr("name"); v != name {
			return true
		}
		content = keytopics.Normalize(sel.AttrOr("content", ""))
		return false
	})
	return content
}

// Headers returns the normalized text of the first h1, h2, h3 and h4 in
// that order, skipping levels that do not occur.
func Headers(doc *goquery.Document) []string {
	var headers []string
	for _, tag := range headerTags {
		sel := doc.Find(tag).First()
		if sel.Length() == 0 {
			continue
		}
		headers = append(headers, keytopics.Normalize(sel.Text()))
	}
	return headers
}
