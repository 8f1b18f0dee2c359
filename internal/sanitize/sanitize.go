// Package sanitize reduces user- or model-supplied text to plain text.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockSelectors end a line of text when flattened.
const blockSelectors = "p, div, li, h1, h2, h3, h4, h5, h6, tr, blockquote, pre"

// PlainText strips markup from s and normalizes whitespace. Line breaks from
// <br> and block elements are kept; runs of blank lines collapse to one.
// Text without a real HTML element, such as "a<b" or "Vec<T>", is only trimmed.
func PlainText(s string) string {
	if !HasMarkup(s) {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	doc.Find("script, style, noscript, iframe, object").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelectors).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return cleanWhitespace(doc.Text())
}

// HasMarkup reports whether s contains a complete, lowercase tag of a known
// HTML element. Capitalized tags like the U in Option<U> are treated as text.
func HasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			raw := strings.TrimPrefix(strings.TrimPrefix(string(z.Raw()), "<"), "/")
			if !strings.HasSuffix(raw, ">") || raw[0] < 'a' || raw[0] > 'z' {
				continue
			}
			name, _ := z.TagName()
			if atom.Lookup(name) != 0 {
				return true
			}
		}
	}
}

// cleanWhitespace collapses spaces within lines and blank-line runs between them.
func cleanWhitespace(text string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
