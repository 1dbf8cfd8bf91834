package testutils

import (
	"context"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/models"
)

const StubEmbedderDimensions = 64

// StubEmbedder is a deterministic bag-of-words embedder: each distinct
// lowercase token is assigned its own dimension in first-seen order. The same
// text always produces the same vector, and texts sharing tokens have nearby
// vectors under cosine distance, which is all retrieval tests need.
type StubEmbedder struct {
	Dimensions int
	Err        error

	mu    sync.Mutex
	vocab map[string]int
	calls int
}

func (e *StubEmbedder) dims() int {
	if e.Dimensions <= 0 {
		return StubEmbedderDimensions
	}
	return e.Dimensions
}

func (e *StubEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if e.Err != nil {
		return nil, e.Err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = e.embed(text)
	}
	return embeddings, nil
}

// embed must be called with the mutex held.
func (e *StubEmbedder) embed(text string) []float32 {
	if e.vocab == nil {
		e.vocab = make(map[string]int)
	}

	vector := make([]float32, e.dims())
	for _, token := range tokenize(text) {
		dim, ok := e.vocab[token]
		if !ok {
			dim = len(e.vocab) % e.dims()
			e.vocab[token] = dim
		}
		vector[dim]++
	}
	return vector
}

func (e *StubEmbedder) Init(_ context.Context, _ *config.Config) error {
	return nil
}

var _ models.EmbeddingsClient = &StubEmbedder{}

// Calls returns how many EmbedTexts calls the embedder has served.
func (e *StubEmbedder) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// StubLLM is a canned-response chat model that records the prompts it is
// given. Setting Err simulates a completion-service failure.
type StubLLM struct {
	Response string
	Err      error

	mu           sync.Mutex
	LastPrompt   string
	LastMessages []schema.ChatMessage
}

var _ models.LLM = &StubLLM{}

func (l *StubLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return l.GenerateChat(
		ctx,
		[]schema.ChatMessage{schema.SystemChatMessage{Content: prompt}},
		options...,
	)
}

func (l *StubLLM) GenerateChat(
	_ context.Context,
	messages []schema.ChatMessage,
	_ ...llms.CallOption,
) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.LastMessages = messages
	if len(messages) > 0 {
		l.LastPrompt = messages[0].GetContent()
	}

	if l.Err != nil {
		return "", l.Err
	}
	if l.Response == "" {
		return "stub response", nil
	}
	return l.Response, nil
}

func (l *StubLLM) GetTokenCount(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

func (l *StubLLM) Init(_ context.Context, _ *config.Config) error {
	return nil
}

// PromptContains reports whether any recorded message content contains s.
func (l *StubLLM) PromptContains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.LastMessages {
		if strings.Contains(m.GetContent(), s) {
			return true
		}
	}
	return false
}

// StubWarehouse serves canned review and metadata rows.
type StubWarehouse struct {
	Reviews  []models.ReviewRecord
	Metadata []models.ProductMetadata
}

var _ models.Warehouse = &StubWarehouse{}

func (w *StubWarehouse) FetchReviews(_ context.Context, _ string) []models.ReviewRecord {
	return w.Reviews
}

func (w *StubWarehouse) FetchMetadata(_ context.Context, _ string) []models.ProductMetadata {
	return w.Metadata
}
