package models

// Answer is the generated response to one question, together with the
// documents the generator stuffed into the prompt to justify it.
type Answer struct {
	Content         string     `json:"content"`
	SourceDocuments []Document `json:"source_documents,omitempty"`
}
