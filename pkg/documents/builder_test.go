package documents

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reviewlens/reviewlens/pkg/models"
)

func makeReview(body any) models.ReviewRecord {
	return models.ReviewRecord{
		UUID:       uuid.New(),
		ASIN:       "B07LFV749P",
		ReviewerID: gofakeit.Username(),
		Rating:     float64(gofakeit.Number(1, 5)),
		Title:      gofakeit.Sentence(3),
		Body:       body,
		Timestamp:  time.Now(),
	}
}

func TestBuildDocuments(t *testing.T) {
	records := []models.ReviewRecord{
		makeReview("great battery"),
		makeReview("poor packaging"),
		makeReview("fast shipping"),
	}

	docs := BuildDocuments(records)
	assert.Len(t, docs, 3)

	for i, doc := range docs {
		assert.Equal(t, records[i].UUID, doc.UUID)
		assert.Equal(t, records[i].Body, doc.Content)
		assert.Equal(t, records[i].ASIN, doc.Metadata["asin"])
		assert.Equal(t, records[i].Rating, doc.Metadata["rating"])
	}
}

func TestBuildDocuments_DropsNonTextBodies(t *testing.T) {
	records := []models.ReviewRecord{
		makeReview("solid construction"),
		makeReview(nil),
		makeReview(42),
		makeReview(""),
		makeReview("arrived on time"),
	}

	docs := BuildDocuments(records)
	assert.Len(t, docs, 2)
	assert.Equal(t, "solid construction", docs[0].Content)
	assert.Equal(t, "arrived on time", docs[1].Content)
}

func TestBuildDocuments_EmptyInput(t *testing.T) {
	docs := BuildDocuments(nil)
	assert.Empty(t, docs)

	docs = BuildDocuments([]models.ReviewRecord{})
	assert.Empty(t, docs)
}
