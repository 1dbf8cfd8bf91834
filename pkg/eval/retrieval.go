package eval

import (
	"context"
	"fmt"

	"github.com/reviewlens/reviewlens/pkg/models"
)

// Searcher is the retrieval surface under evaluation.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]models.SearchResult, error)
}

// RetrievalMetrics are precision@k and recall@k averaged over a dataset.
type RetrievalMetrics struct {
	K         int     `json:"k"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

// EvaluateRetrieval runs every dataset query against the searcher and scores
// the retrieved document texts against each record's labeled documents.
// Precision is hits/k, recall is hits over the labeled document count.
func EvaluateRetrieval(
	ctx context.Context,
	searcher Searcher,
	dataset []Record,
	k int,
) (*RetrievalMetrics, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	var precisionSum, recallSum float64
	scored := 0

	for _, record := range dataset {
		if len(record.RetrievedDocs) == 0 {
			log.Warnf("Skipping record with no labeled documents: %q", record.Query)
			continue
		}

		results, err := searcher.Search(ctx, record.Query, k)
		if err != nil {
			return nil, fmt.Errorf("search failed for query %q: %w", record.Query, err)
		}

		relevant := make(map[string]struct{}, len(record.RetrievedDocs))
		for _, doc := range record.RetrievedDocs {
			relevant[doc] = struct{}{}
		}

		hits := 0
		for _, result := range results {
			if _, ok := relevant[result.Document.Content]; ok {
				hits++
			}
		}

		precisionSum += float64(hits) / float64(k)
		recallSum += float64(hits) / float64(len(relevant))
		scored++
	}

	if scored == 0 {
		return nil, fmt.Errorf("no scorable records in dataset")
	}

	return &RetrievalMetrics{
		K:         k,
		Precision: precisionSum / float64(scored),
		Recall:    recallSum / float64(scored),
	}, nil
}
