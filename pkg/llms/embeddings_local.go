package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
)

const LocalEmbeddingsTimeout = 30 * time.Second

var _ models.EmbeddingsClient = &LocalEmbeddingsClient{}

// LocalEmbeddingsClient calls a local sentence-transformer sidecar
// (e.g. all-MiniLM-L6-v2 behind a small HTTP server) to embed texts.
type LocalEmbeddingsClient struct {
	serverURL string
}

func NewLocalEmbeddingsClient(ctx context.Context, cfg *config.Config) (*LocalEmbeddingsClient, error) {
	client := &LocalEmbeddingsClient{}
	err := client.Init(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *LocalEmbeddingsClient) Init(_ context.Context, cfg *config.Config) error {
	if cfg.Embeddings.ServerURL == "" {
		return NewEmbeddingsClientError("embeddings.server_url is not set", nil)
	}
	c.serverURL = cfg.Embeddings.ServerURL
	return nil
}

type textEmbedding struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding,omitempty"`
}

type textEmbeddingCollection struct {
	Embeddings []textEmbedding `json:"embeddings"`
}

func (c *LocalEmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	url := c.serverURL + "/embeddings"

	documents := make([]textEmbedding, len(texts))
	for i, text := range texts {
		documents[i] = textEmbedding{Text: text}
	}
	collection := textEmbeddingCollection{
		Embeddings: documents,
	}
	jsonBody, err := json.Marshal(collection)
	if err != nil {
		log.Error("Error marshaling request body:", err)
		return nil, err
	}

	var bodyBytes []byte
	// Retry POST request to the embeddings sidecar 3 times with 1 second delay.
	err = retry.Do(
		func() error {
			var err error
			bodyBytes, err = makeEmbedRequest(ctx, url, jsonBody)
			if err != nil {
				return err
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(bodyBytes, &collection)
	if err != nil {
		log.Errorf("Error unmarshaling response body: %s", err)
		return nil, err
	}

	m := make([][]float32, len(collection.Embeddings))
	for i := range collection.Embeddings {
		m[i] = collection.Embeddings[i].Embedding
	}

	return m, nil
}

func makeEmbedRequest(ctx context.Context, url string, jsonBody []byte) ([]byte, error) {
	httpClient := &http.Client{Timeout: LocalEmbeddingsTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Error("Error making POST request:", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"error making POST request: %d - %s",
			resp.StatusCode,
			resp.Status,
		)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Error reading response body:", err)
		return nil, err
	}

	return bodyBytes, nil
}
