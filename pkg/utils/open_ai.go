package utils

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompletionClient is the alternative CompletionClient provider.
type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, model string) CompletionClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeoutSeconds*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{Service: "openai", StatusCode: apiErr.HTTPStatusCode, Detail: apiErr.Message}
		}
		return "", &UpstreamError{Service: "openai", StatusCode: http.StatusInternalServerError, Detail: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
