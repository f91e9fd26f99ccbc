// Package embedding converts free text into fixed-length numeric vectors via
// an external embedding service.
package embedding

import (
	"context"
	"strings"
)

// maxTextChars caps input length to respect the embedding service's limit.
// Truncation happens after whitespace collapsing.
const maxTextChars = 8000

// Embedder generates vector embeddings from text.
type Embedder interface {
	// EmbedText returns a vector embedding for a single text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one embedding per input text, in input order.
	// Implementations must issue a single batched call to the external
	// service rather than one call per text.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// PrepareText normalizes text before embedding: whitespace runs collapse to a
// single space, leading/trailing whitespace is stripped, then the result is
// truncated to the service's input limit.
func PrepareText(text string) string {
	cleaned := strings.Join(strings.Fields(text), " ")
	if runes := []rune(cleaned); len(runes) > maxTextChars {
		cleaned = string(runes[:maxTextChars])
	}
	return cleaned
}
