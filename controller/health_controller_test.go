package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController(t *testing.T) {
	t.Run("ShouldReportOkWhenServiceResponds", func(t *testing.T) {
		c := ProvideHealthController(&fakeLLM{})
		rec := httptest.NewRecorder()
		c.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("ShouldReportUnavailableWhenPingFails", func(t *testing.T) {
		c := ProvideHealthController(&fakeLLM{pingErr: errors.New("invalid api key")})
		rec := httptest.NewRecorder()
		c.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, rec.Body.String(), "invalid api key")
	})
}
