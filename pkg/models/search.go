package models

// SearchResult is one retrieved document with its cosine distance to the
// query embedding. Smaller distance means more similar.
type SearchResult struct {
	Document Document `json:"document"`
	Dist     float32  `json:"dist"`
}
