package faq

import (
	"regexp"
	"strings"
)

// Default chunking budgets, in words.
const (
	DefaultChunkSize = 2000
	DefaultOverlap   = 200
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits text on sentence-terminal punctuation followed by
// whitespace. Each sentence keeps its terminator; a trailing fragment without
// one is returned as-is.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// SplitChunks splits text into sentence-respecting chunks of at most
// chunkSize words, where consecutive chunks share up to overlap words of
// trailing context. A single sentence longer than chunkSize still becomes
// part of a chunk; the budget is a soft bound in that one case. The output
// is deterministic for identical inputs.
//
// overlap >= chunkSize is not rejected; it makes adjacent chunks nearly
// identical and is the caller's responsibility.
func SplitChunks(text string, chunkSize, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []string
	var current []string
	currentWords := 0

	for _, sentence := range splitSentences(text) {
		n := len(strings.Fields(sentence))

		if currentWords+n > chunkSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current, currentWords = overlapSeed(current, overlap)
		}

		current = append(current, sentence)
		currentWords += n
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// overlapSeed walks the closed chunk backward collecting whole sentences
// until adding one more would exceed the overlap word budget.
func overlapSeed(closed []string, overlap int) ([]string, int) {
	var seed []string
	words := 0
	for i := len(closed) - 1; i >= 0; i-- {
		n := len(strings.Fields(closed[i]))
		if words+n > overlap {
			break
		}
		seed = append([]string{closed[i]}, seed...)
		words += n
	}
	return seed, words
}
