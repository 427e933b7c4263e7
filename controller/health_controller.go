package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/missshiy01-dotcom/smart-faq-generator/llm"
	"go.uber.org/zap"
)

const pingTimeout = 10 * time.Second

// HealthController reports whether the generation service is reachable with
// the configured key and model, so a bad key surfaces before the first
// document upload.
type HealthController struct {
	client llm.Client
}

func ProvideHealthController(client llm.Client) *HealthController {
	return &HealthController{client: client}
}

func (hc *HealthController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if err := hc.client.Ping(ctx); err != nil {
		logger.Error("generation service unreachable", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (hc *HealthController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/health",
			Method:  http.MethodGet,
			Handler: hc.HandleHealth,
		},
	}
}
