package llms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reviewlens/reviewlens/config"
)

func TestLocalEmbeddingsClient_EmbedTexts(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var collection textEmbeddingCollection
			err := json.NewDecoder(r.Body).Decode(&collection)
			assert.NoError(t, err)

			for i := range collection.Embeddings {
				collection.Embeddings[i].Embedding = []float32{
					float32(len(collection.Embeddings[i].Text)), 1.0, 0.0,
				}
			}
			err = json.NewEncoder(w).Encode(collection)
			assert.NoError(t, err)
		}),
	)
	defer server.Close()

	cfg := &config.Config{
		Embeddings: config.EmbeddingsConfig{
			Service:   "local",
			ServerURL: server.URL,
		},
	}

	client, err := NewLocalEmbeddingsClient(context.Background(), cfg)
	assert.NoError(t, err)

	embeddings, err := client.EmbedTexts(context.Background(), []string{"great battery", "poor packaging"})
	assert.NoError(t, err)
	assert.Len(t, embeddings, 2)
	assert.Equal(t, []float32{13, 1, 0}, embeddings[0])
	assert.Equal(t, []float32{14, 1, 0}, embeddings[1])
}

func TestLocalEmbeddingsClient_EmptyInput(t *testing.T) {
	cfg := &config.Config{
		Embeddings: config.EmbeddingsConfig{
			Service:   "local",
			ServerURL: "http://localhost:9999",
		},
	}

	client, err := NewLocalEmbeddingsClient(context.Background(), cfg)
	assert.NoError(t, err)

	embeddings, err := client.EmbedTexts(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, embeddings)
}

func TestNewLocalEmbeddingsClient_MissingURL(t *testing.T) {
	cfg := &config.Config{
		Embeddings: config.EmbeddingsConfig{Service: "local"},
	}

	_, err := NewLocalEmbeddingsClient(context.Background(), cfg)
	assert.Error(t, err)
}
