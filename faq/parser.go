package faq

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/missshiy01-dotcom/smart-faq-generator/model"
)

// ErrMalformedResponse marks a completion that could not be parsed as a JSON
// array at all, as opposed to an array that parsed but held no valid pairs.
var ErrMalformedResponse = errors.New("completion is not a JSON array")

// ParseCompletion extracts FAQ pairs from a raw model completion. The
// completion may wrap its JSON array in a markdown fence (```json or bare
// ```); only the content of the first fence is considered. Elements that are
// not objects with non-empty question and answer strings are dropped
// individually. A structurally unparsable completion returns
// ErrMalformedResponse; an array with zero valid pairs returns an empty
// slice and no error.
func ParseCompletion(raw string) ([]model.FAQPair, error) {
	text := strings.TrimSpace(stripFence(strings.TrimSpace(raw)))

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	pairs := make([]model.FAQPair, 0, len(items))
	for _, item := range items {
		var p model.FAQPair
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		question := strings.TrimSpace(p.Question)
		answer := strings.TrimSpace(p.Answer)
		if question == "" || answer == "" {
			continue
		}
		pairs = append(pairs, model.FAQPair{Question: question, Answer: answer})
	}
	return pairs, nil
}

// stripFence returns the content between the first code-fence marker and the
// next one. Text without fences is returned unchanged.
func stripFence(text string) string {
	marker := "```"
	if i := strings.Index(text, "```json"); i >= 0 {
		marker = "```json"
		text = text[i+len(marker):]
	} else if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len(marker):]
	} else {
		return text
	}
	if j := strings.Index(text, "```"); j >= 0 {
		return text[:j]
	}
	return text
}
