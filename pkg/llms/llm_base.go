package llms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/models"
)

const DefaultTemperature = 0.5
const InvalidLLMModelError = "llm model is not set or is invalid"

var log = internal.GetLogger()

func NewLLMClient(ctx context.Context, cfg *config.Config) (models.LLM, error) {
	switch cfg.LLM.Service {
	case "openai":
		// Azure OpenAI deployment names can't be validated against a
		// hard-coded model list, so skip validation when an Azure or custom
		// endpoint is configured.
		if cfg.LLM.AzureOpenAIEndpoint != "" || cfg.LLM.OpenAIEndpoint != "" {
			return NewOpenAILLM(ctx, cfg)
		}
		if _, ok := ValidOpenAILLMs[cfg.LLM.Model]; !ok {
			return nil, fmt.Errorf(
				"invalid llm model \"%s\" for %s",
				cfg.LLM.Model,
				cfg.LLM.Service,
			)
		}
		return NewOpenAILLM(ctx, cfg)
	case "":
		// for backward compatibility
		return NewOpenAILLM(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid LLM service: %s", cfg.LLM.Service)
	}
}

type LLMError struct {
	message       string
	originalError error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm error: %s (original error: %v)", e.message, e.originalError)
}

func NewLLMError(message string, originalError error) *LLMError {
	return &LLMError{message: message, originalError: originalError}
}

var ValidOpenAILLMs = map[string]bool{
	"gpt-3.5-turbo":     true,
	"gpt-4":             true,
	"gpt-3.5-turbo-16k": true,
	"gpt-4-32k":         true,
}

var MaxLLMTokensMap = map[string]int{
	"gpt-3.5-turbo":     4096,
	"gpt-3.5-turbo-16k": 16_384,
	"gpt-4":             8192,
	"gpt-4-32k":         32_768,
}

func GetLLMModelName(cfg *config.Config) (string, error) {
	llmModel := cfg.LLM.Model
	// Don't validate if custom OpenAI endpoint or Azure OpenAI endpoint is set
	if cfg.LLM.OpenAIEndpoint != "" || cfg.LLM.AzureOpenAIEndpoint != "" {
		return llmModel, nil
	}
	if llmModel == "" || !ValidOpenAILLMs[llmModel] {
		return "", NewLLMError(InvalidLLMModelError, nil)
	}
	return llmModel, nil
}

func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// Do not retry 400 errors as they're used by OpenAI to indicate maximum
	// context length exceeded
	if resp != nil && resp.StatusCode == 400 {
		return false, err
	}

	shouldRetry, _ := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	return shouldRetry, nil
}
