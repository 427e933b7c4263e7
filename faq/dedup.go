package faq

import (
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/ds"
	"github.com/missshiy01-dotcom/smart-faq-generator/model"
)

// questionKey derives the dedup identity of a question: lower-cased, trailing
// whitespace removed, then one trailing '?' and one trailing '.' stripped.
func questionKey(question string) string {
	key := strings.ToLower(question)
	key = strings.TrimRight(key, " \t\r\n")
	key = strings.TrimSuffix(key, "?")
	key = strings.TrimSuffix(key, ".")
	return key
}

// Deduplicate removes pairs whose question keys collide, keeping the first
// occurrence of each key in order. Answers are never compared; a later
// duplicate with a different answer is still discarded.
func Deduplicate(pairs []model.FAQPair) []model.FAQPair {
	seen := ds.NewSet[string]()
	unique := make([]model.FAQPair, 0, len(pairs))

	for _, pair := range pairs {
		key := questionKey(pair.Question)
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		unique = append(unique, pair)
	}
	return unique
}
