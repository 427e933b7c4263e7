package faq

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`http[s]?://\S+`)
	emailRe      = regexp.MustCompile(`\S+@\S+`)
	pageNumRe    = regexp.MustCompile(`\n\s*\d+\s*\n`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes raw extracted text before chunking. It collapses
// whitespace runs, strips URL and email tokens and standalone page-number
// lines, and trims the result. Empty input yields empty output.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = pageNumRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
