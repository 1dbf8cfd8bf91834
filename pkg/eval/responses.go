package eval

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// GenerateFunc produces the system's answer for one evaluation query.
type GenerateFunc func(ctx context.Context, query string) (string, error)

// ResponseMetrics are BLEU and ROUGE-L F1 averaged over a dataset.
type ResponseMetrics struct {
	BLEU   float64 `json:"bleu"`
	ROUGEL float64 `json:"rouge_l"`
}

// EvaluateResponses generates an answer for every dataset query and scores
// it against the expected response.
func EvaluateResponses(
	ctx context.Context,
	generate GenerateFunc,
	dataset []Record,
) (*ResponseMetrics, error) {
	if len(dataset) == 0 {
		return nil, fmt.Errorf("dataset contains no records")
	}

	var bleuSum, rougeSum float64
	for _, record := range dataset {
		answer, err := generate(ctx, record.Query)
		if err != nil {
			return nil, fmt.Errorf("generation failed for query %q: %w", record.Query, err)
		}

		bleuSum += BLEU(answer, record.ExpectedResponse)
		rougeSum += ROUGEL(answer, record.ExpectedResponse)
	}

	n := float64(len(dataset))
	return &ResponseMetrics{
		BLEU:   bleuSum / n,
		ROUGEL: rougeSum / n,
	}, nil
}

const bleuMaxOrder = 4

// BLEU scores a candidate against a reference: the geometric mean of
// clipped n-gram precisions up to 4-grams, scaled by the brevity penalty.
// Scores are in [0, 1].
func BLEU(candidate, reference string) float64 {
	candTokens := tokenize(candidate)
	refTokens := tokenize(reference)
	if len(candTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	logPrecisionSum := 0.0
	orders := 0
	for n := 1; n <= bleuMaxOrder && n <= len(candTokens); n++ {
		precision := clippedPrecision(candTokens, refTokens, n)
		if precision == 0 {
			return 0
		}
		logPrecisionSum += math.Log(precision)
		orders++
	}
	if orders == 0 {
		return 0
	}

	brevityPenalty := 1.0
	if len(candTokens) < len(refTokens) {
		brevityPenalty = math.Exp(1 - float64(len(refTokens))/float64(len(candTokens)))
	}

	return brevityPenalty * math.Exp(logPrecisionSum/float64(orders))
}

// clippedPrecision counts candidate n-grams, clipping each n-gram's count at
// its count in the reference.
func clippedPrecision(candTokens, refTokens []string, n int) float64 {
	candCounts := ngramCounts(candTokens, n)
	if len(candCounts) == 0 {
		return 0
	}
	refCounts := ngramCounts(refTokens, n)

	matched := 0
	total := 0
	for gram, count := range candCounts {
		total += count
		if refCount, ok := refCounts[gram]; ok {
			if count < refCount {
				matched += count
			} else {
				matched += refCount
			}
		}
	}

	return float64(matched) / float64(total)
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// ROUGEL scores a candidate against a reference with the F1 over the
// longest common token subsequence. Scores are in [0, 1].
func ROUGEL(candidate, reference string) float64 {
	candTokens := tokenize(candidate)
	refTokens := tokenize(reference)
	if len(candTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	lcs := float64(lcsLength(candTokens, refTokens))
	if lcs == 0 {
		return 0
	}

	precision := lcs / float64(len(candTokens))
	recall := lcs / float64(len(refTokens))
	return 2 * precision * recall / (precision + recall)
}

func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
