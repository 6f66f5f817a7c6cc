package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClient using Google's Gemini models
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (CompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeoutSeconds*time.Second)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", wrapGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func wrapGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &UpstreamError{Service: "gemini", StatusCode: apiErr.Code, Detail: apiErr.Message}
	}
	return &UpstreamError{Service: "gemini", StatusCode: http.StatusInternalServerError, Detail: err.Error()}
}
