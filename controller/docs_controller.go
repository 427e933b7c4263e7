package controller

import (
	"html/template"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/missshiy01-dotcom/smart-faq-generator/llm"
	"github.com/missshiy01-dotcom/smart-faq-generator/templates"
	"go.uber.org/zap"
)

type DocsController struct {
}

func ProvideDocsController() *DocsController {
	return &DocsController{}
}

func (dc *DocsController) HandleUsage(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templates.FS, "usage.html")
	if err != nil {
		logger.Error("Failed to parse usage template", zap.Error(err))
		http.Error(w, "Failed to load usage page", http.StatusInternalServerError)
		return
	}

	data := struct {
		Model string
	}{
		Model: llm.DefaultModel,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := tmpl.Execute(w, data); err != nil {
		logger.Error("Failed to execute usage template", zap.Error(err))
		return
	}
}

func (dc *DocsController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/",
			Method:  http.MethodGet,
			Handler: dc.HandleUsage,
		},
	}
}
