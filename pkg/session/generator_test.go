package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/reviewlens/pkg/memory"
	"github.com/reviewlens/reviewlens/pkg/models"
	"github.com/reviewlens/reviewlens/pkg/testutils"
)

func testDocs(contents ...string) []models.Document {
	docs := make([]models.Document, len(contents))
	for i, c := range contents {
		docs[i] = models.Document{Content: c}
	}
	return docs
}

func TestGenerator_Generate(t *testing.T) {
	llm := &testutils.StubLLM{Response: "The packaging is often damaged."}
	mem := memory.NewConversationMemory()
	g := NewGenerator(llm, mem, testutils.NewTestConfig())

	answer := g.Generate(
		context.Background(),
		"How is the packaging?",
		testDocs("poor packaging, box was crushed", "great battery life"),
	)

	assert.Equal(t, "The packaging is often damaged.", answer.Content)
	assert.Len(t, answer.SourceDocuments, 2)

	// context and question both reach the model
	assert.True(t, llm.PromptContains("poor packaging, box was crushed"))
	assert.True(t, llm.PromptContains("How is the packaging?"))

	history := mem.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	assert.Equal(t, "The packaging is often damaged.", history[1].Content)
}

func TestGenerator_CompletionFailure(t *testing.T) {
	llm := &testutils.StubLLM{Err: errors.New("rate limited")}
	mem := memory.NewConversationMemory()
	g := NewGenerator(llm, mem, testutils.NewTestConfig())

	answer := g.Generate(context.Background(), "How is the packaging?", testDocs("some review"))

	// completion failures surface as an answer, never as an error
	assert.Equal(t, "Error processing query: rate limited", answer.Content)

	// the failed attempt is still recorded
	history := mem.History()
	require.Len(t, history, 2)
	assert.Equal(t, "How is the packaging?", history[0].Content)
	assert.Equal(t, "Error processing query: rate limited", history[1].Content)
}

func TestGenerator_ContextTokenBudget(t *testing.T) {
	llm := &testutils.StubLLM{}
	cfg := testutils.NewTestConfig()
	cfg.Retrieval.MaxContextTokens = 10
	g := NewGenerator(llm, memory.NewConversationMemory(), cfg)

	long := strings.Repeat("word ", 8)
	answer := g.Generate(
		context.Background(),
		"question",
		testDocs(long, long, long),
	)

	// StubLLM counts words, so only the first document fits the budget
	require.Len(t, answer.SourceDocuments, 1)
	assert.False(t, llm.PromptContains(long+"\n\n"+long))
}

func TestGenerator_HistoryWindow(t *testing.T) {
	llm := &testutils.StubLLM{}
	cfg := testutils.NewTestConfig()
	cfg.Memory.MessageWindow = 2
	mem := memory.NewConversationMemory()
	g := NewGenerator(llm, mem, cfg)

	g.Generate(context.Background(), "first question", nil)
	g.Generate(context.Background(), "second question", nil)
	g.Generate(context.Background(), "third question", nil)

	// only the most recent exchange is replayed
	assert.True(t, llm.PromptContains("second question"))
	assert.False(t, llm.PromptContains("first question"))
	assert.Equal(t, 6, mem.Len())
}

func TestGenerator_NoDocuments(t *testing.T) {
	llm := &testutils.StubLLM{Response: "I have no data on that."}
	g := NewGenerator(llm, memory.NewConversationMemory(), testutils.NewTestConfig())

	answer := g.Generate(context.Background(), "How is the packaging?", nil)

	assert.Equal(t, "I have no data on that.", answer.Content)
	assert.Empty(t, answer.SourceDocuments)
}
