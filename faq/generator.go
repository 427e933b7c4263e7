package faq

import (
	"context"
	"errors"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/missshiy01-dotcom/smart-faq-generator/model"
	"go.uber.org/zap"
)

// ErrNoFAQs is returned when every chunk failed or produced zero pairs.
// The run itself completed; the caller may retry the whole document.
var ErrNoFAQs = errors.New("no FAQs generated from any chunk")

// GenerateFunc produces a raw model completion for a prompt. Implementations
// own all network I/O; the generator never calls anything else.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// Config controls one generation run.
type Config struct {
	ChunkSize         int // word budget per chunk
	Overlap           int // word budget shared between adjacent chunks
	QuestionsPerChunk int
	Workers           int           // 1 = sequential (default)
	RequestInterval   time.Duration // pause between calls, sequential mode only
	// Progress is invoked once per chunk as it completes, always in chunk
	// order. In sequential mode it fires before the next chunk starts.
	Progress func(chunk, totalChunks, pairs int)
}

func (c *Config) applyDefaults() {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Overlap < 0 {
		c.Overlap = DefaultOverlap
	}
	if c.QuestionsPerChunk <= 0 {
		c.QuestionsPerChunk = 5
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}

// Generator drives chunk iteration over an injected generation function and
// aggregates the per-chunk results into a deduplicated FAQ set.
type Generator struct {
	generate GenerateFunc
	cfg      Config
}

func NewGenerator(generate GenerateFunc, cfg Config) *Generator {
	cfg.applyDefaults()
	return &Generator{generate: generate, cfg: cfg}
}

// Run chunks the (already normalized) document text and attempts generation
// for every chunk. A chunk whose call fails or whose completion cannot be
// parsed contributes zero pairs and a report entry; it never aborts the run.
// Results are collected into per-chunk slots so the final ordering is by
// chunk index then in-chunk order regardless of worker count. Deduplication
// runs once, after all chunks finished.
func (g *Generator) Run(ctx context.Context, text string) ([]model.FAQPair, []model.ChunkReport, error) {
	chunks := SplitChunks(text, g.cfg.ChunkSize, g.cfg.Overlap)
	if len(chunks) == 0 {
		return nil, nil, ErrNoFAQs
	}

	slots := make([][]model.FAQPair, len(chunks))
	reports := make([]model.ChunkReport, len(chunks))

	if g.cfg.Workers == 1 {
		g.runSequential(ctx, chunks, slots, reports)
	} else {
		g.runWithWorkers(ctx, chunks, slots, reports)
	}

	var all []model.FAQPair
	for i := range slots {
		all = append(all, slots[i]...)
	}

	if len(all) == 0 {
		return nil, reports, ErrNoFAQs
	}
	return Deduplicate(all), reports, nil
}

func (g *Generator) runSequential(ctx context.Context, chunks []string, slots [][]model.FAQPair, reports []model.ChunkReport) {
	for i, chunk := range chunks {
		slots[i], reports[i] = g.processChunk(ctx, chunk, i+1, len(chunks))
		if g.cfg.Progress != nil {
			g.cfg.Progress(i+1, len(chunks), reports[i].Pairs)
		}

		if g.cfg.RequestInterval > 0 && i < len(chunks)-1 {
			select {
			case <-ctx.Done():
				// remaining chunks still get attempted; the generate
				// call itself observes the cancelled context
			case <-time.After(g.cfg.RequestInterval):
			}
		}
	}
}

func (g *Generator) runWithWorkers(ctx context.Context, chunks []string, slots [][]model.FAQPair, reports []model.ChunkReport) {
	sem := make(chan struct{}, g.cfg.Workers)
	type chunkResult struct {
		pairs  []model.FAQPair
		report model.ChunkReport
	}

	tasks := make([]<-chan async.Result[chunkResult], len(chunks))
	for i, chunk := range chunks {
		tasks[i] = async.Go(func() (chunkResult, error) {
			sem <- struct{}{}
			defer func() { <-sem }()
			pairs, report := g.processChunk(ctx, chunk, i+1, len(chunks))
			return chunkResult{pairs: pairs, report: report}, nil
		})
	}

	// progress is emitted at collection, in index order, so callbacks stay
	// deterministic regardless of completion order
	for i := range tasks {
		res, _ := async.Await(tasks[i])
		slots[i], reports[i] = res.pairs, res.report
		if g.cfg.Progress != nil {
			g.cfg.Progress(i+1, len(chunks), reports[i].Pairs)
		}
	}
}

// processChunk is the single-chunk state machine: build prompt, invoke the
// generation function, parse. Failures are folded into the report.
func (g *Generator) processChunk(ctx context.Context, chunk string, num, total int) ([]model.FAQPair, model.ChunkReport) {
	report := model.ChunkReport{Chunk: num}

	prompt := buildPrompt(chunk, num, total, g.cfg.QuestionsPerChunk)
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		logger.Error("chunk generation failed",
			zap.Int("chunk", num), zap.Int("totalChunks", total), zap.Error(err))
		report.Error = err.Error()
		return nil, report
	}

	pairs, err := ParseCompletion(raw)
	if err != nil {
		logger.Error("chunk completion unparsable",
			zap.Int("chunk", num), zap.Int("totalChunks", total), zap.Error(err))
		report.Error = err.Error()
		return nil, report
	}

	report.Pairs = len(pairs)
	logger.Info("chunk processed",
		zap.Int("chunk", num), zap.Int("totalChunks", total), zap.Int("pairs", len(pairs)))
	return pairs, report
}
