package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/auracanvas/aura-api/internal/analysis"
	"github.com/auracanvas/aura-api/internal/config"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Client implements analysis.Analyzer against the Gemini multimodal API
type Client struct {
	apiKey string
	model  string
}

// NewClient creates a new Gemini analysis client
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (c *Client) DefaultModel() string {
	if c.model != "" {
		return c.model
	}
	return "gemini-2.5-flash"
}

func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// Analyze sends the image and the aura prompt to Gemini and returns the
// validated result. Transport failures, empty replies and unparsable replies
// all surface as errors; the one-layer-up fallback substitution is the
// caller's job.
func (c *Client) Analyze(ctx context.Context, req analysis.Request) (*domain.AnalysisResult, error) {
	if !c.IsConfigured() {
		return nil, &domain.AnalysisError{Err: fmt.Errorf("gemini client is not configured (missing API key)")}
	}

	imageBytes, contentType, err := analysis.DecodeDataURL(req.ImageData)
	if err != nil {
		return nil, &domain.AnalysisError{Err: err}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, &domain.AnalysisError{Err: fmt.Errorf("failed to create gemini client: %w", err)}
	}
	defer client.Close()

	model := client.GenerativeModel(c.DefaultModel())
	var temperature float32 = 0.7
	var maxTokens int32 = 256
	model.Temperature = &temperature
	model.MaxOutputTokens = &maxTokens

	prompt := analysis.BuildPrompt(req.Energy, req.Element)

	start := time.Now()
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(analysis.ImageFormat(contentType), imageBytes),
		genai.Text(prompt),
	)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return nil, &domain.AnalysisError{Err: fmt.Errorf("gemini generation error: %w", err)}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &domain.AnalysisError{Err: fmt.Errorf("empty response from gemini")}
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}
	if output == "" {
		return nil, &domain.AnalysisError{Err: fmt.Errorf("no text in gemini response")}
	}

	result, err := analysis.ParseResult(output)
	if err != nil {
		return nil, &domain.AnalysisError{Err: err}
	}

	log.Debug().
		Str("model", c.DefaultModel()).
		Int64("latency_ms", latency).
		Str("color", string(result.Color)).
		Msg("Gemini analysis complete")

	return result, nil
}
