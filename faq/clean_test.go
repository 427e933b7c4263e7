package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Run("ShouldReturnEmptyForEmptyInput", func(t *testing.T) {
		assert.Equal(t, "", CleanText(""))
		assert.Equal(t, "", CleanText("   \n\t "))
	})

	t.Run("ShouldCollapseWhitespaceRuns", func(t *testing.T) {
		assert.Equal(t, "one two three", CleanText("one   two\n\n\tthree"))
	})

	t.Run("ShouldStripURLs", func(t *testing.T) {
		got := CleanText("See https://example.com/docs for details.")
		assert.Equal(t, "See  for details.", got)
	})

	t.Run("ShouldStripEmails", func(t *testing.T) {
		got := CleanText("Contact support@example.com today.")
		assert.Equal(t, "Contact  today.", got)
	})

	t.Run("ShouldTrimResult", func(t *testing.T) {
		assert.Equal(t, "text", CleanText("  text  "))
	})
}
