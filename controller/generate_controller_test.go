package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/missshiy01-dotcom/smart-faq-generator/appconfig"
	"github.com/missshiy01-dotcom/smart-faq-generator/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	completion string
	err        error
	pingErr    error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.completion, f.err
}

func (f *fakeLLM) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeLLM) Close() error { return nil }

func testConfig() *appconfig.AppConfig {
	return &appconfig.AppConfig{
		ChunkSize:         1000,
		ChunkOverlap:      200,
		QuestionsPerChunk: 5,
		Workers:           1,
	}
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGenerateController(t *testing.T) {
	docText := "Gophers are small rodents. They live in burrows underground. They eat roots and plants."

	t.Run("ShouldGenerateFAQsFromTextUpload", func(t *testing.T) {
		client := &fakeLLM{completion: "```json\n[{\"question\":\"Where do gophers live?\",\"answer\":\"In burrows underground.\"}]\n```"}
		c := ProvideGenerateController(client, testConfig())

		rec := httptest.NewRecorder()
		c.HandleGenerate(rec, uploadRequest(t, "gophers.txt", docText))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.GenerateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.RunID)
		assert.Equal(t, "gophers.txt", resp.Document)
		assert.Equal(t, 1, resp.TotalFAQs)
		require.Len(t, resp.FAQs, 1)
		assert.Equal(t, "Where do gophers live?", resp.FAQs[0].Question)
		require.Len(t, resp.Chunks, 1)
		assert.Equal(t, 1, resp.Chunks[0].Pairs)
	})

	t.Run("ShouldReturnBadGatewayWhenNoFAQsGenerated", func(t *testing.T) {
		client := &fakeLLM{err: errors.New("quota exceeded")}
		c := ProvideGenerateController(client, testConfig())

		rec := httptest.NewRecorder()
		c.HandleGenerate(rec, uploadRequest(t, "gophers.txt", docText))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("ShouldRejectEmptyDocument", func(t *testing.T) {
		client := &fakeLLM{completion: "[]"}
		c := ProvideGenerateController(client, testConfig())

		rec := httptest.NewRecorder()
		c.HandleGenerate(rec, uploadRequest(t, "empty.txt", "   "))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("ShouldRejectUnsupportedFileType", func(t *testing.T) {
		client := &fakeLLM{completion: "[]"}
		c := ProvideGenerateController(client, testConfig())

		rec := httptest.NewRecorder()
		c.HandleGenerate(rec, uploadRequest(t, "image.png", "not a document"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ShouldRejectMissingFileField", func(t *testing.T) {
		client := &fakeLLM{completion: "[]"}
		c := ProvideGenerateController(client, testConfig())

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("note", "no file here"))
		require.NoError(t, writer.Close())
		req := httptest.NewRequest(http.MethodPost, "/generate", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := httptest.NewRecorder()
		c.HandleGenerate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ShouldRequireAPIKeyOnRoute", func(t *testing.T) {
		t.Setenv("API_KEY", "test-key")
		client := &fakeLLM{completion: "[]"}
		c := ProvideGenerateController(client, testConfig())

		rec := httptest.NewRecorder()
		c.Routes()[0].Handler(rec, uploadRequest(t, "gophers.txt", docText))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
