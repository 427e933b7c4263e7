package controller

import (
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/missshiy01-dotcom/smart-faq-generator/faq"
	"github.com/missshiy01-dotcom/smart-faq-generator/middleware"
	"github.com/missshiy01-dotcom/smart-faq-generator/model"
	"go.uber.org/zap"
)

// ExportController serializes a previously generated FAQ set. It is
// stateless: the caller posts the pairs back with the desired format.
type ExportController struct {
}

func ProvideExportController() *ExportController {
	return &ExportController{}
}

func (c *ExportController) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode export request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.FAQs) == 0 {
		http.Error(w, "At least one FAQ is required", http.StatusBadRequest)
		return
	}
	if req.Document == "" {
		req.Document = "document"
	}

	var payload, contentType string
	switch req.Format {
	case "json":
		payload = faq.ExportJSON(req.FAQs, req.Document)
		contentType = "application/json; charset=utf-8"
	case "markdown":
		payload = faq.ExportMarkdown(req.FAQs, req.Document)
		contentType = "text/markdown; charset=utf-8"
	case "html":
		payload = faq.ExportHTML(req.FAQs, req.Document)
		contentType = "text/html; charset=utf-8"
	default:
		http.Error(w, "Format must be one of: json, markdown, html", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		logger.Error("Failed to write export payload", zap.Error(err))
	}
}

func (c *ExportController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/export",
			Method:  http.MethodPost,
			Handler: middleware.APIKeyAuthMiddleware(c.HandleExport),
		},
	}
}
