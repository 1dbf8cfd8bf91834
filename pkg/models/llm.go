package models

import (
	"context"

	"github.com/reviewlens/reviewlens/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// Embedder turns texts into fixed-length vectors. The same embedder must be
// used for indexing and for queries; it is assumed deterministic for a given
// input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

type LLM interface {
	// Call runs the LLM chat completion against a single string prompt
	Call(
		ctx context.Context,
		prompt string,
		options ...llms.CallOption,
	) (string, error)
	// GenerateChat runs the chat completion against a full message history
	GenerateChat(
		ctx context.Context,
		messages []schema.ChatMessage,
		options ...llms.CallOption,
	) (string, error)
	// GetTokenCount returns the number of tokens in the given text
	GetTokenCount(text string) (int, error)
	// Init initializes the LLM
	Init(ctx context.Context, cfg *config.Config) error
}

type EmbeddingsClient interface {
	Embedder
	// Init initializes the Client
	Init(ctx context.Context, cfg *config.Config) error
}
