package models

import "context"

// Warehouse fetches per-product rows from the analytical warehouse.
// Both methods return an empty slice on any fetch failure; failures are
// logged at the warehouse boundary and never propagate to the caller.
type Warehouse interface {
	FetchReviews(ctx context.Context, asin string) []ReviewRecord
	FetchMetadata(ctx context.Context, asin string) []ProductMetadata
}
