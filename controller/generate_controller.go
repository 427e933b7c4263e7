package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/google/uuid"
	"github.com/missshiy01-dotcom/smart-faq-generator/appconfig"
	"github.com/missshiy01-dotcom/smart-faq-generator/extract"
	"github.com/missshiy01-dotcom/smart-faq-generator/faq"
	"github.com/missshiy01-dotcom/smart-faq-generator/llm"
	"github.com/missshiy01-dotcom/smart-faq-generator/middleware"
	"github.com/missshiy01-dotcom/smart-faq-generator/model"
	"go.uber.org/zap"
)

const maxUploadBytes = 32 << 20

// GenerateController handles document uploads and runs the FAQ pipeline.
type GenerateController struct {
	client llm.Client
	cfg    *appconfig.AppConfig
}

// ProvideGenerateController wires the shared Gemini client and config into
// the controller. The client is built once at boot; tests substitute a fake.
func ProvideGenerateController(client llm.Client, cfg *appconfig.AppConfig) *GenerateController {
	return &GenerateController{client: client, cfg: cfg}
}

// HandleGenerate accepts a multipart upload ("file" field, PDF/DOCX/ODT/
// TXT/MD), extracts and normalizes its text, and generates a deduplicated
// FAQ set. Chunking knobs may be overridden per request via form fields.
func (c *GenerateController) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A document is required in the \"file\" field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	text, err := extract.FromUpload(header.Filename, file)
	if err != nil {
		logger.Error("text extraction failed",
			zap.String("document", header.Filename), zap.Error(err))
		if errors.Is(err, extract.ErrNoText) {
			http.Error(w, "No text could be extracted from the document", http.StatusUnprocessableEntity)
		} else {
			http.Error(w, "Could not read the uploaded document", http.StatusBadRequest)
		}
		return
	}

	text = faq.CleanText(text)
	if text == "" {
		http.Error(w, "No text could be extracted from the document", http.StatusUnprocessableEntity)
		return
	}

	runID := uuid.NewString()
	cfg := faq.Config{
		ChunkSize:         formInt(r, "chunk_size", c.cfg.ChunkSize),
		Overlap:           formInt(r, "overlap", c.cfg.ChunkOverlap),
		QuestionsPerChunk: formInt(r, "questions_per_chunk", c.cfg.QuestionsPerChunk),
		Workers:           formInt(r, "workers", c.cfg.Workers),
	}
	logger.Info("generation run started",
		zap.String("runId", runID),
		zap.String("document", header.Filename),
		zap.Int("chunkSize", cfg.ChunkSize),
		zap.Int("overlap", cfg.Overlap))

	generator := faq.NewGenerator(c.client.Generate, cfg)
	pairs, reports, err := generator.Run(r.Context(), text)
	if err != nil {
		if errors.Is(err, faq.ErrNoFAQs) {
			logger.Error("run produced no FAQs", zap.String("runId", runID))
			http.Error(w, "No FAQs could be generated from this document", http.StatusBadGateway)
			return
		}
		logger.Error("generation run failed", zap.String("runId", runID), zap.Error(err))
		http.Error(w, "FAQ generation failed", http.StatusInternalServerError)
		return
	}

	response := model.GenerateResponse{
		RunID:     runID,
		Document:  header.Filename,
		TotalFAQs: len(pairs),
		FAQs:      pairs,
		Chunks:    reports,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
		return
	}

	logger.Info("generation run finished",
		zap.String("runId", runID), zap.Int("totalFaqs", len(pairs)))
}

func formInt(r *http.Request, field string, fallback int) int {
	raw := r.FormValue(field)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func (c *GenerateController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/generate",
			Method:  http.MethodPost,
			Handler: middleware.APIKeyAuthMiddleware(c.HandleGenerate),
		},
	}
}
