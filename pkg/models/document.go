package models

import (
	"github.com/google/uuid"
)

// Document is a retrievable unit of review text. Content is always the review
// body; every column of the originating row is retained in Metadata.
// Embedding is set by the indexer and never mutated afterwards.
type Document struct {
	UUID      uuid.UUID              `json:"uuid"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Embedding []float32              `json:"embedding,omitempty"`
}
