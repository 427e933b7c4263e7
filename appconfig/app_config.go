package appconfig

import (
	"os"
	"strconv"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/missshiy01-dotcom/smart-faq-generator/faq"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	ChunkSize         int    `ini:"chunk_size"`
	ChunkOverlap      int    `ini:"chunk_overlap"`
	QuestionsPerChunk int    `ini:"questions_per_chunk"`
	Workers           int    `ini:"workers"`
	GeminiModel       string `ini:"gemini_model"`
}

// ProvideAppConfig builds the config from environment variables with the
// documented defaults. These act as per-request fallbacks; a generate
// request may override the chunking knobs per call.
func ProvideAppConfig() (*AppConfig, error) {
	return &AppConfig{
		ChunkSize:         envInt("FAQ_CHUNK_SIZE", faq.DefaultChunkSize),
		ChunkOverlap:      envInt("FAQ_CHUNK_OVERLAP", faq.DefaultOverlap),
		QuestionsPerChunk: envInt("FAQ_QUESTIONS_PER_CHUNK", 5),
		Workers:           envInt("FAQ_WORKERS", 1),
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
	}, nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
