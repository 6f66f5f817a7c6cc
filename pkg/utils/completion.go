package utils

import "context"

const completionTimeoutSeconds = 30

// CompletionClient generates a free-text answer for a prompt. Implementations
// must surface upstream failures as *UpstreamError and return an empty string
// (not an error) when the provider produced no candidates.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
