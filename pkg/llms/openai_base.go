package llms

import (
	"context"
	"time"

	"github.com/reviewlens/reviewlens/config"
	"github.com/tmc/langchaingo/llms/openai"
)

const OpenAIAPITimeout = 90 * time.Second
const MaxOpenAIAPIRequestAttempts = 5

const OpenAIAPIKeyNotSetError = "REVIEWLENS_OPENAI_API_KEY is not set"                       //nolint:gosec
const EmbeddingsOpenAIAPIKeyNotSetError = "REVIEWLENS_EMBEDDINGS_OPENAI_API_KEY is not set" //nolint:gosec

type ClientType string

const (
	EmbeddingsClientType ClientType = "embeddings"
	LLMClientType        ClientType = "llm"
)

func NewOpenAIChatClient(options ...openai.Option) (*openai.Chat, error) {
	client, err := openai.NewChat(options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func GetOpenAIAPIKey(cfg *config.Config, clientType ClientType) string {
	var apiKey string

	if clientType == EmbeddingsClientType {
		apiKey = cfg.Embeddings.OpenAIAPIKey
		// If the key is not set, log a fatal error and exit
		if apiKey == "" {
			log.Fatal(EmbeddingsOpenAIAPIKeyNotSetError)
		}
	} else {
		apiKey = cfg.LLM.OpenAIAPIKey
		if apiKey == "" {
			log.Fatal(OpenAIAPIKeyNotSetError)
		}
	}
	return apiKey
}

func validateOpenAIConfig(cfg *config.Config, clientType ClientType) {
	var azureEndpoint string
	var openAIEndpoint string

	if clientType == EmbeddingsClientType {
		azureEndpoint = cfg.Embeddings.AzureOpenAIEndpoint
		openAIEndpoint = cfg.Embeddings.OpenAIEndpoint
	} else {
		azureEndpoint = cfg.LLM.AzureOpenAIEndpoint
		openAIEndpoint = cfg.LLM.OpenAIEndpoint
	}

	if azureEndpoint != "" && openAIEndpoint != "" {
		log.Fatal("only one of AzureOpenAIEndpoint or OpenAIEndpoint can be set")
	}
}

func EmbedTextsWithOpenAIClient(
	ctx context.Context,
	texts []string,
	openAIClient *openai.Chat,
	clientType ClientType,
) ([][]float32, error) {
	// If the Client is not initialized, return an error
	if openAIClient == nil {
		if clientType == EmbeddingsClientType {
			return nil, NewEmbeddingsClientError(InvalidEmbeddingsClientError, nil)
		}
		return nil, NewLLMError(InvalidLLMModelError, nil)
	}

	thisCtx, cancel := context.WithTimeout(ctx, OpenAIAPITimeout)
	defer cancel()

	embeddings, err := openAIClient.CreateEmbedding(thisCtx, texts)
	if err != nil {
		message := "error while creating embedding"
		if clientType == EmbeddingsClientType {
			return nil, NewEmbeddingsClientError(message, err)
		}
		return nil, NewLLMError(message, err)
	}

	return embeddings, nil
}

func GetBaseOpenAIClientOptions(apiKey, validModel string) []openai.Option {
	retryableHTTPClient := NewRetryableHTTPClient(MaxOpenAIAPIRequestAttempts, OpenAIAPITimeout)

	options := make([]openai.Option, 0)
	options = append(
		options,
		openai.WithHTTPClient(retryableHTTPClient.StandardClient()),
		openai.WithModel(validModel),
		openai.WithToken(apiKey),
	)

	return options
}

func ConfigureOpenAIClientOptions(
	options []openai.Option,
	cfg *config.Config,
	clientType ClientType,
) []openai.Option {
	var azureEndpoint string
	var openAIEndpoint string
	var openAIOrgID string
	var embeddingModel string

	if clientType == EmbeddingsClientType {
		azureEndpoint = cfg.Embeddings.AzureOpenAIEndpoint
		openAIEndpoint = cfg.Embeddings.OpenAIEndpoint
		openAIOrgID = cfg.Embeddings.OpenAIOrgID
		embeddingModel = cfg.Embeddings.Model
	} else {
		azureEndpoint = cfg.LLM.AzureOpenAIEndpoint
		openAIEndpoint = cfg.LLM.OpenAIEndpoint
		openAIOrgID = cfg.LLM.OpenAIOrgID
	}

	if azureEndpoint != "" {
		options = append(
			options,
			openai.WithAPIType(openai.APITypeAzure),
			openai.WithBaseURL(azureEndpoint),
		)
	}

	if embeddingModel != "" {
		options = append(
			options,
			openai.WithEmbeddingModel(embeddingModel),
		)
	}

	if openAIEndpoint != "" {
		options = append(
			options,
			openai.WithBaseURL(openAIEndpoint),
		)
	}

	if openAIOrgID != "" {
		options = append(
			options,
			openai.WithOrganization(openAIOrgID),
		)
	}

	return options
}
