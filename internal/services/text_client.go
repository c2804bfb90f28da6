package services

import "context"

// TextClient is one outbound text-generation provider. Complete issues exactly
// one request and returns the raw completion text; it never retries — provider
// selection and recovery belong to the fallback chain, not this layer.
type TextClient interface {
	Name() string
	Complete(ctx context.Context, system string, user string, maxTokens int) (string, error)
}
