package model

// FAQPair is a single generated question/answer pair. Both fields are
// non-empty after trimming; pairs failing that are dropped at parse time.
type FAQPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChunkReport is the per-chunk observability record emitted by the generator.
// Chunk is 1-based. Error is empty on success.
type ChunkReport struct {
	Chunk int    `json:"chunk"`
	Pairs int    `json:"pairs"`
	Error string `json:"error,omitempty"`
}

// GenerateResponse is returned by POST /generate.
type GenerateResponse struct {
	RunID     string        `json:"runId"`
	Document  string        `json:"document"`
	TotalFAQs int           `json:"totalFaqs"`
	FAQs      []FAQPair     `json:"faqs"`
	Chunks    []ChunkReport `json:"chunks"`
}

// ExportRequest is the body of POST /export. Format is one of
// "json", "markdown", "html".
type ExportRequest struct {
	Document string    `json:"document"`
	Format   string    `json:"format"`
	FAQs     []FAQPair `json:"faqs"`
}
