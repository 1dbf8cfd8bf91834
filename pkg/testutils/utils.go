package testutils

import (
	"github.com/reviewlens/reviewlens/config"
)

// NewTestConfig returns a self-contained config suitable for unit tests.
// No config file or environment is consulted.
func NewTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Service: "openai",
			Model:   "gpt-3.5-turbo",
		},
		Embeddings: config.EmbeddingsConfig{
			Service:    "local",
			Model:      "all-MiniLM-L6-v2",
			Dimensions: 384,
			ServerURL:  "http://localhost:5557",
		},
		Warehouse: config.WarehouseConfig{
			Project:        "test-project",
			Dataset:        "amazon_reviews",
			ReviewsTable:   "reviews",
			MetadataTable:  "meta_data",
			TimeoutSeconds: 5,
		},
		Retrieval: config.RetrievalConfig{
			TopK:             4,
			MaxContextTokens: 3000,
		},
		Memory: config.MemoryConfig{
			MessageWindow: 12,
		},
		Server: config.ServerConfig{
			Port: 8080,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}
}
