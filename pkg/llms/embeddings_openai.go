package llms

import (
	"context"

	"github.com/tmc/langchaingo/llms/openai"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var _ models.EmbeddingsClient = &OpenAIEmbeddingsClient{}

func NewOpenAIEmbeddingsClient(ctx context.Context, cfg *config.Config) (*OpenAIEmbeddingsClient, error) {
	client := &OpenAIEmbeddingsClient{}
	err := client.Init(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type OpenAIEmbeddingsClient struct {
	client *openai.Chat
}

func (c *OpenAIEmbeddingsClient) Init(_ context.Context, cfg *config.Config) error {
	options := c.configureClient(cfg)

	// Create a new client instance with options. Even though it's only used
	// for embeddings, it uses the same langchain openai chat client builder.
	client, err := openai.NewChat(options...)
	if err != nil {
		return err
	}

	c.client = client

	return nil
}

func (c *OpenAIEmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return EmbedTextsWithOpenAIClient(ctx, texts, c.client, EmbeddingsClientType)
}

func getValidOpenAIModel() string {
	for k := range ValidOpenAILLMs {
		return k
	}
	return "gpt-3.5-turbo"
}

func (c *OpenAIEmbeddingsClient) configureClient(cfg *config.Config) []openai.Option {
	// Retrieve the OpenAIAPIKey from configuration
	apiKey := GetOpenAIAPIKey(cfg, EmbeddingsClientType)

	validateOpenAIConfig(cfg, EmbeddingsClientType)

	// Even though the client is only used for embeddings, we must pass a
	// valid openai llm model to satisfy the client builder.
	validOpenaiLLMModel := getValidOpenAIModel()

	options := GetBaseOpenAIClientOptions(apiKey, validOpenaiLLMModel)

	options = ConfigureOpenAIClientOptions(options, cfg, EmbeddingsClientType)

	return options
}
