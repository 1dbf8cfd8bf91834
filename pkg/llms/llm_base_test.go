package llms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reviewlens/reviewlens/config"
)

func TestGetLLMModelName(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         *config.Config
		expected    string
		expectError bool
	}{
		{
			name: "valid openai model",
			cfg: &config.Config{
				LLM: config.LLM{Model: "gpt-3.5-turbo"},
			},
			expected: "gpt-3.5-turbo",
		},
		{
			name: "invalid model",
			cfg: &config.Config{
				LLM: config.LLM{Model: "not-a-model"},
			},
			expectError: true,
		},
		{
			name: "empty model",
			cfg: &config.Config{
				LLM: config.LLM{},
			},
			expectError: true,
		},
		{
			name: "custom endpoint skips validation",
			cfg: &config.Config{
				LLM: config.LLM{
					Model:          "my-deployment",
					OpenAIEndpoint: "http://localhost:1234",
				},
			},
			expected: "my-deployment",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, err := GetLLMModelName(tc.cfg)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, model)
		})
	}
}

func TestNewLLMClient_InvalidService(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLM{Service: "not-a-service", Model: "gpt-3.5-turbo"},
	}

	_, err := NewLLMClient(context.Background(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid LLM service")
}

func TestNewLLMClient_InvalidModel(t *testing.T) {
	cfg := &config.Config{
		LLM: config.LLM{Service: "openai", Model: "not-a-model"},
	}

	_, err := NewLLMClient(context.Background(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid llm model")
}
