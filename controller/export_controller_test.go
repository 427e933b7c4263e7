package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postExport(t *testing.T, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	c := ProvideExportController()
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(body))
	if authorized {
		req.Header.Set("X-API-Key", "test-key")
	}
	rec := httptest.NewRecorder()
	c.Routes()[0].Handler(rec, req)
	return rec
}

func TestExportController(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	body := `{"document":"guide.pdf","format":"%s","faqs":[{"question":"Q?","answer":"A"}]}`

	t.Run("ShouldExportJSON", func(t *testing.T) {
		rec := postExport(t, strings.Replace(body, "%s", "json", 1), true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"document": "guide.pdf"`)
	})

	t.Run("ShouldExportMarkdown", func(t *testing.T) {
		rec := postExport(t, strings.Replace(body, "%s", "markdown", 1), true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "## 1. Q?")
	})

	t.Run("ShouldExportHTML", func(t *testing.T) {
		rec := postExport(t, strings.Replace(body, "%s", "html", 1), true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Q1: Q?")
	})

	t.Run("ShouldRejectUnknownFormat", func(t *testing.T) {
		rec := postExport(t, strings.Replace(body, "%s", "csv", 1), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ShouldRejectEmptyFAQSet", func(t *testing.T) {
		rec := postExport(t, `{"document":"d","format":"json","faqs":[]}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ShouldRequireAPIKey", func(t *testing.T) {
		rec := postExport(t, strings.Replace(body, "%s", "json", 1), false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
