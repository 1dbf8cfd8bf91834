package llms

import (
	"context"

	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var _ models.LLM = &OpenAILLM{}

func NewOpenAILLM(ctx context.Context, cfg *config.Config) (*OpenAILLM, error) {
	llm := &OpenAILLM{}
	err := llm.Init(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return llm, nil
}

type OpenAILLM struct {
	llm *openai.Chat
	tkm *tiktoken.Tiktoken
}

func (l *OpenAILLM) Init(_ context.Context, cfg *config.Config) error {
	// Initialize the Tiktoken client
	encoding := "cl100k_base"
	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return err
	}
	l.tkm = tkm

	options := l.configureClient(cfg)

	// Create a new client instance with options
	client, err := NewOpenAIChatClient(options...)
	if err != nil {
		return err
	}
	l.llm = client

	return nil
}

func (l *OpenAILLM) Call(ctx context.Context,
	prompt string,
	options ...llms.CallOption,
) (string, error) {
	return l.GenerateChat(
		ctx,
		[]schema.ChatMessage{schema.SystemChatMessage{Content: prompt}},
		options...,
	)
}

func (l *OpenAILLM) GenerateChat(ctx context.Context,
	messages []schema.ChatMessage,
	options ...llms.CallOption,
) (string, error) {
	// If the LLM is not initialized, return an error
	if l.llm == nil {
		return "", NewLLMError(InvalidLLMModelError, nil)
	}

	if len(options) == 0 {
		options = append(options, llms.WithTemperature(DefaultTemperature))
	}

	thisCtx, cancel := context.WithTimeout(ctx, OpenAIAPITimeout)
	defer cancel()

	completion, err := l.llm.Call(thisCtx, messages, options...)
	if err != nil {
		return "", err
	}

	return completion.GetContent(), nil
}

func (l *OpenAILLM) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return EmbedTextsWithOpenAIClient(ctx, texts, l.llm, LLMClientType)
}

// GetTokenCount returns the number of tokens in the text
func (l *OpenAILLM) GetTokenCount(text string) (int, error) {
	return len(l.tkm.Encode(text, nil, nil)), nil
}

func (l *OpenAILLM) configureClient(cfg *config.Config) []openai.Option {
	// Retrieve the OpenAIAPIKey from configuration
	apiKey := GetOpenAIAPIKey(cfg, LLMClientType)

	validateOpenAIConfig(cfg, LLMClientType)

	options := GetBaseOpenAIClientOptions(apiKey, cfg.LLM.Model)

	options = ConfigureOpenAIClientOptions(options, cfg, LLMClientType)

	return options
}
