package index

import (
	"context"
	"fmt"
	"sort"

	"github.com/viterin/vek/vek32"

	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var log = internal.GetLogger()

// Index is an in-memory nearest-neighbor index over a set of documents.
// It is built once per session and read-only afterwards: concurrent
// searches are safe, and there is no way to add or remove documents.
type Index struct {
	docs       []models.Document
	embedder   models.Embedder
	dimensions int
}

// NewIndex embeds the documents and builds the index. Building over zero
// documents fails fast with models.ErrNoDocuments: a retriever that silently
// returns nothing is worse than no retriever at all.
func NewIndex(
	ctx context.Context,
	docs []models.Document,
	embedder models.Embedder,
) (*Index, error) {
	if len(docs) == 0 {
		return nil, models.ErrNoDocuments
	}

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Content
	}

	embeddings, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(embeddings) != len(docs) {
		return nil, fmt.Errorf(
			"embedder returned %d embeddings for %d documents",
			len(embeddings),
			len(docs),
		)
	}

	dimensions := len(embeddings[0])
	indexed := make([]models.Document, len(docs))
	for i := range docs {
		if len(embeddings[i]) != dimensions {
			return nil, fmt.Errorf(
				"embedding dimension mismatch: expected %d, got %d",
				dimensions,
				len(embeddings[i]),
			)
		}
		indexed[i] = docs[i]
		indexed[i].Embedding = embeddings[i]
	}

	log.Debugf("Built index over %d documents with %d dimensions", len(indexed), dimensions)

	return &Index{
		docs:       indexed,
		embedder:   embedder,
		dimensions: dimensions,
	}, nil
}

// Search embeds the query and returns the topK most similar documents,
// ordered by ascending cosine distance. The result length is bounded by
// both topK and the index size.
func (idx *Index) Search(
	ctx context.Context,
	query string,
	topK int,
) ([]models.SearchResult, error) {
	if topK <= 0 {
		return []models.SearchResult{}, nil
	}

	embeddings, err := idx.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) != 1 || len(embeddings[0]) != idx.dimensions {
		return nil, fmt.Errorf("embedder returned an unexpected query embedding shape")
	}
	queryEmbedding := embeddings[0]

	results := make([]models.SearchResult, len(idx.docs))
	for i := range idx.docs {
		results[i] = models.SearchResult{
			Document: idx.docs[i],
			Dist:     1 - vek32.CosineSimilarity(queryEmbedding, idx.docs[i].Embedding),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Dist < results[j].Dist
	})

	if topK < len(results) {
		results = results[:topK]
	}

	return results, nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Dimensions returns the embedding width of the index.
func (idx *Index) Dimensions() int {
	return idx.dimensions
}
