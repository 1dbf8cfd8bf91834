package llms

import (
	"context"
	"fmt"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
)

const InvalidEmbeddingsClientError = "embeddings client is not set or is invalid"

type EmbeddingsClientError struct {
	message       string
	originalError error
}

func (e *EmbeddingsClientError) Error() string {
	return fmt.Sprintf("embeddings client error: %s (original error: %v)", e.message, e.originalError)
}

func NewEmbeddingsClientError(message string, originalError error) *EmbeddingsClientError {
	return &EmbeddingsClientError{message: message, originalError: originalError}
}

func NewEmbeddingsClient(ctx context.Context, cfg *config.Config) (models.EmbeddingsClient, error) {
	switch cfg.Embeddings.Service {
	case "openai", "":
		return NewOpenAIEmbeddingsClient(ctx, cfg)
	case "local":
		// A sentence-transformer sidecar, e.g. all-MiniLM-L6-v2 behind a
		// small HTTP server.
		return NewLocalEmbeddingsClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid embeddings service: %s", cfg.Embeddings.Service)
	}
}
