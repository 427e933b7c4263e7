package llm

import (
	"context"
	"os"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/google/generative-ai-go/genai"
	"github.com/missshiy01-dotcom/smart-faq-generator/appconfig"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultModel = "gemini-2.0-flash-exp"

// generation parameters, matching the FAQ prompt's expectations.
const (
	temperature     = 0.7
	maxOutputTokens = 2500
	topP            = 0.95
)

// Client is the generation service consumed by the FAQ pipeline. The
// orchestrator treats any error or empty completion as zero pairs for the
// chunk in question. Ping backs the health endpoint.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

// GeminiClient calls the Gemini API. One client is built at boot and shared
// across requests; it is safe for concurrent use.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, status.Error(codes.Unauthenticated, "gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "init gemini client: %v", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// ProvideGeminiClient builds the shared client for dependency injection at
// boot. The model comes from the app config; the key stays env-only because
// it is a secret.
func ProvideGeminiClient(cfg *appconfig.AppConfig) (Client, error) {
	client, err := NewGeminiClient(context.Background(), os.Getenv("GEMINI_API_KEY"), cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	logger.Info("gemini client ready", zap.String("model", client.model))
	return client, nil
}

// Generate sends one prompt and returns the concatenated text parts of the
// first candidate. An empty completion is not an error; callers decide what
// an empty result means.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	genaiModel := g.client.GenerativeModel(g.model)
	genaiModel.SetCandidateCount(1)
	genaiModel.SetTemperature(temperature)
	genaiModel.SetMaxOutputTokens(maxOutputTokens)
	genaiModel.SetTopP(topP)

	resp, err := genaiModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", status.Errorf(codes.Unavailable, "generate: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}
	return output, nil
}

// Ping issues a minimal generation call to verify the key and model work.
func (g *GeminiClient) Ping(ctx context.Context) error {
	genaiModel := g.client.GenerativeModel(g.model)
	genaiModel.SetCandidateCount(1)
	genaiModel.SetMaxOutputTokens(8)
	if _, err := genaiModel.GenerateContent(ctx, genai.Text("Hello")); err != nil {
		return status.Errorf(codes.Unavailable, "ping: %v", err)
	}
	return nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
