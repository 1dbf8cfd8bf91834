package eval

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/reviewlens/pkg/index"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/testutils"
)

const testDataset = `[
  {
    "query": "How is the packaging?",
    "expected_response": "Buyers frequently report crushed boxes.",
    "retrieved_docs": ["poor packaging, the box arrived crushed"]
  },
  {
    "query": "How is the battery?",
    "expected_response": "Battery life is praised.",
    "retrieved_docs": ["great battery life, lasts all day"]
  }
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	records, err := LoadDataset(writeDataset(t, testDataset))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "How is the packaging?", records[0].Query)
	assert.Equal(t, "Buyers frequently report crushed boxes.", records[0].ExpectedResponse)
	require.Len(t, records[0].RetrievedDocs, 1)
}

func TestLoadDataset_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := LoadDataset(writeDataset(t, "{not json"))
		assert.Error(t, err)
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := LoadDataset(writeDataset(t, "[]"))
		assert.Error(t, err)
	})
}

func TestEvaluateRetrieval(t *testing.T) {
	docs := []models.Document{
		{Content: "poor packaging, the box arrived crushed"},
		{Content: "great battery life, lasts all day"},
		{Content: "bright sharp screen with vivid colors"},
	}
	idx, err := index.NewIndex(context.Background(), docs, &testutils.StubEmbedder{})
	require.NoError(t, err)

	records, err := LoadDataset(writeDataset(t, testDataset))
	require.NoError(t, err)

	metrics, err := EvaluateRetrieval(context.Background(), idx, records, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.K)

	// each query's one labeled document lands in the top 2
	assert.InDelta(t, 0.5, metrics.Precision, 1e-9)
	assert.InDelta(t, 1.0, metrics.Recall, 1e-9)
}

func TestEvaluateRetrieval_Errors(t *testing.T) {
	idx, err := index.NewIndex(
		context.Background(),
		[]models.Document{{Content: "some review"}},
		&testutils.StubEmbedder{},
	)
	require.NoError(t, err)

	t.Run("non-positive k", func(t *testing.T) {
		_, err := EvaluateRetrieval(context.Background(), idx, []Record{{Query: "q"}}, 0)
		assert.Error(t, err)
	})

	t.Run("no scorable records", func(t *testing.T) {
		_, err := EvaluateRetrieval(
			context.Background(),
			idx,
			[]Record{{Query: "q", RetrievedDocs: nil}},
			2,
		)
		assert.Error(t, err)
	})
}
