package documents

import (
	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var log = internal.GetLogger()

// BuildDocuments converts review records into retrievable documents, one per
// record. Records whose body is not a non-empty string are dropped: the
// warehouse occasionally carries NULL or numeric bodies, and indexing those
// would poison retrieval quality. All row columns are retained as document
// metadata.
func BuildDocuments(records []models.ReviewRecord) []models.Document {
	docs := make([]models.Document, 0, len(records))
	dropped := 0

	for i := range records {
		record := &records[i]
		body, ok := record.Body.(string)
		if !ok || body == "" {
			dropped++
			log.Debugf("Dropping review %s: body is not text", record.UUID)
			continue
		}

		docs = append(docs, models.Document{
			UUID:    record.UUID,
			Content: body,
			Metadata: map[string]interface{}{
				"asin":        record.ASIN,
				"reviewer_id": record.ReviewerID,
				"rating":      record.Rating,
				"title":       record.Title,
				"timestamp":   record.Timestamp,
			},
		})
	}

	if dropped > 0 {
		log.Infof("Dropped %d of %d review records with non-text bodies", dropped, len(records))
	}
	if len(docs) == 0 {
		log.Warn("No documents built from review records")
	}

	return docs
}
