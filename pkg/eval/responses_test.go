package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBLEU(t *testing.T) {
	t.Run("identical sentences score 1", func(t *testing.T) {
		score := BLEU(
			"the packaging is poor and boxes arrive crushed",
			"the packaging is poor and boxes arrive crushed",
		)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("disjoint sentences score 0", func(t *testing.T) {
		assert.Zero(t, BLEU("great battery life", "the screen is very bright"))
	})

	t.Run("empty candidate scores 0", func(t *testing.T) {
		assert.Zero(t, BLEU("", "the packaging is poor"))
	})

	t.Run("case and punctuation are normalized", func(t *testing.T) {
		score := BLEU("The packaging is poor!", "the packaging is poor")
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("short candidate pays a brevity penalty", func(t *testing.T) {
		reference := "the packaging is poor and boxes arrive crushed"
		full := BLEU(reference, reference)
		truncated := BLEU("the packaging is poor", reference)
		assert.Less(t, truncated, full)
		assert.Greater(t, truncated, 0.0)
	})

	t.Run("closer candidate scores higher", func(t *testing.T) {
		reference := "the packaging is poor and boxes arrive crushed"
		near := BLEU("the packaging is poor and boxes arrive damaged", reference)
		far := BLEU("the packaging is poor but sturdy overall somehow still", reference)
		assert.Greater(t, near, far)
	})
}

func TestROUGEL(t *testing.T) {
	t.Run("identical sentences score 1", func(t *testing.T) {
		score := ROUGEL("the box arrived crushed", "the box arrived crushed")
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("disjoint sentences score 0", func(t *testing.T) {
		assert.Zero(t, ROUGEL("great battery life", "the screen is bright"))
	})

	t.Run("subsequence scores the F1", func(t *testing.T) {
		// LCS is 4 tokens, candidate has 4, reference has 5
		score := ROUGEL("the box arrived crushed", "the box arrived badly crushed")
		precision, recall := 1.0, 0.8
		assert.InDelta(t, 2*precision*recall/(precision+recall), score, 1e-9)
	})

	t.Run("order matters", func(t *testing.T) {
		inOrder := ROUGEL("poor packaging crushed box", "poor packaging crushed box")
		shuffled := ROUGEL("box crushed packaging poor", "poor packaging crushed box")
		assert.Greater(t, inOrder, shuffled)
	})
}

func TestEvaluateResponses(t *testing.T) {
	dataset := []Record{
		{Query: "How is the packaging?", ExpectedResponse: "the packaging is poor"},
		{Query: "How is the battery?", ExpectedResponse: "battery life is great"},
	}

	t.Run("perfect generator scores 1", func(t *testing.T) {
		byQuery := map[string]string{
			"How is the packaging?": "the packaging is poor",
			"How is the battery?":   "battery life is great",
		}
		metrics, err := EvaluateResponses(
			context.Background(),
			func(_ context.Context, query string) (string, error) {
				return byQuery[query], nil
			},
			dataset,
		)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, metrics.BLEU, 1e-9)
		assert.InDelta(t, 1.0, metrics.ROUGEL, 1e-9)
	})

	t.Run("generation error aborts", func(t *testing.T) {
		_, err := EvaluateResponses(
			context.Background(),
			func(context.Context, string) (string, error) {
				return "", errors.New("completion unavailable")
			},
			dataset,
		)
		assert.Error(t, err)
	})

	t.Run("empty dataset errors", func(t *testing.T) {
		_, err := EvaluateResponses(
			context.Background(),
			func(context.Context, string) (string, error) { return "", nil },
			nil,
		)
		assert.Error(t, err)
	})
}
