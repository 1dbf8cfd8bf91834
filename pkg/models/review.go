package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord is one customer review row fetched from the warehouse.
// Body is typed as any at this boundary: the dataset carries the odd
// non-text body, and the document builder is responsible for dropping
// those rows before indexing.
type ReviewRecord struct {
	UUID       uuid.UUID `json:"uuid"`
	ASIN       string    `json:"asin"`
	ReviewerID string    `json:"reviewer_id"`
	Rating     float64   `json:"rating"`
	Title      string    `json:"title"`
	Body       any       `json:"body"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProductMetadata is one product description row. Display only, never indexed.
type ProductMetadata struct {
	ASIN       string                 `json:"asin"`
	Title      string                 `json:"title"`
	Category   string                 `json:"category"`
	Price      float64                `json:"price"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}
