package faq

import "fmt"

const promptTemplate = `You are an expert at creating educational FAQ content.

Generate exactly %d high-quality question-answer pairs from the following text (chunk %d/%d).

TEXT:
"""
%s
"""

REQUIREMENTS:
1. Generate EXACTLY %d question-answer pairs
2. Questions should be natural and specific to the content
3. Answers must be complete and informative (2-4 sentences)
4. Cover different aspects of the text
5. Base answers ONLY on the provided text

OUTPUT: Return ONLY a valid JSON array with this structure:
[
  {
    "question": "What is the main topic?",
    "answer": "The main topic is... [complete answer]"
  }
]

CRITICAL: Return ONLY the JSON array, no markdown, no extra text.`

// buildPrompt renders the generation prompt for one chunk. chunkNum is
// 1-based.
func buildPrompt(chunk string, chunkNum, totalChunks, numQuestions int) string {
	return fmt.Sprintf(promptTemplate, numQuestions, chunkNum, totalChunks, chunk, numQuestions)
}
