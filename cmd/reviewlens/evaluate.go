package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/documents"
	"github.com/reviewlens/reviewlens/pkg/eval"
	"github.com/reviewlens/reviewlens/pkg/index"
	"github.com/reviewlens/reviewlens/pkg/memory"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/session"
)

var (
	datasetPath string
	evalASIN    string
	evalTopK    int
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score retrieval and response quality against a labeled dataset",
	Run:   func(cmd *cobra.Command, args []string) { runEvaluate() },
}

func runEvaluate() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring reviewlens: %s", err)
	}
	config.SetLogLevel(cfg)

	ctx := context.Background()
	appState := NewAppState(cfg)

	dataset, err := eval.LoadDataset(datasetPath)
	if err != nil {
		log.Fatalf("Error loading dataset: %s", err)
	}

	topK := evalTopK
	if topK <= 0 {
		topK = cfg.Retrieval.TopK
	}

	reviews := appState.Warehouse.FetchReviews(ctx, evalASIN)
	docs := documents.BuildDocuments(reviews)
	idx, err := index.NewIndex(ctx, docs, appState.EmbeddingsClient)
	if err != nil {
		log.Fatalf("Error building index: %s", err)
	}
	log.Infof("Indexed %d documents for ASIN %s", idx.Len(), evalASIN)

	retrievalMetrics, err := eval.EvaluateRetrieval(ctx, idx, dataset, topK)
	if err != nil {
		log.Fatalf("Error evaluating retrieval: %s", err)
	}

	responseMetrics, err := eval.EvaluateResponses(
		ctx,
		func(ctx context.Context, query string) (string, error) {
			// fresh memory per query so answers don't leak across records
			generator := session.NewGenerator(appState.LLM, memory.NewConversationMemory(), cfg)
			results, err := idx.Search(ctx, query, topK)
			if err != nil {
				return "", err
			}
			retrieved := make([]models.Document, len(results))
			for i := range results {
				retrieved[i] = results[i].Document
			}
			answer := generator.Generate(ctx, query, retrieved)
			return answer.Content, nil
		},
		dataset,
	)
	if err != nil {
		log.Fatalf("Error evaluating responses: %s", err)
	}

	fmt.Printf("Retrieval @%d: precision %.3f, recall %.3f\n",
		retrievalMetrics.K, retrievalMetrics.Precision, retrievalMetrics.Recall)
	fmt.Printf("Responses: BLEU %.3f, ROUGE-L %.3f\n",
		responseMetrics.BLEU, responseMetrics.ROUGEL)
}
