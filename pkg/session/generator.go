package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/memory"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var log = internal.GetLogger()

// Generator assembles prompts from retrieved documents and conversation
// history and runs them against the completion service. Completion failures
// are converted into a user-facing error answer so the session stays usable;
// every attempt is recorded in conversation memory either way.
type Generator struct {
	llm              models.LLM
	memory           *memory.ConversationMemory
	temperature      float64
	maxContextTokens int
	messageWindow    int
}

func NewGenerator(
	llm models.LLM,
	mem *memory.ConversationMemory,
	cfg *config.Config,
) *Generator {
	return &Generator{
		llm:              llm,
		memory:           mem,
		temperature:      cfg.LLM.Temperature,
		maxContextTokens: cfg.Retrieval.MaxContextTokens,
		messageWindow:    cfg.Memory.MessageWindow,
	}
}

// Generate answers the question using the retrieved documents as context.
// It never returns an error: on completion failure the answer content is a
// formatted error string. The question/answer pair is appended to
// conversation memory as an adjacent pair.
func (g *Generator) Generate(
	ctx context.Context,
	question string,
	retrievedDocs []models.Document,
) *models.Answer {
	contextText, usedDocs := g.buildContext(retrievedDocs)

	content, err := g.complete(ctx, question, contextText)
	if err != nil {
		log.Errorf("Chatbot error: %v", err)
		content = fmt.Sprintf("Error processing query: %v", err)
	}

	g.memory.AppendExchange(question, content)

	return &models.Answer{
		Content:         content,
		SourceDocuments: usedDocs,
	}
}

func (g *Generator) complete(ctx context.Context, question, contextText string) (string, error) {
	prompt, err := internal.ParsePrompt(sellerPromptTemplate, sellerPromptTemplateData{
		Context: contextText,
	})
	if err != nil {
		return "", err
	}

	messages := make([]schema.ChatMessage, 0, g.messageWindow+2)
	messages = append(messages, schema.SystemChatMessage{Content: prompt})
	messages = append(messages, historyToChatMessages(g.memory.LastN(g.messageWindow))...)
	messages = append(messages, schema.HumanChatMessage{Content: question})

	options := []llms.CallOption{llms.WithTemperature(g.temperature)}

	return g.llm.GenerateChat(ctx, messages, options...)
}

// buildContext concatenates document texts up to the configured token
// budget and returns the rendered context along with the documents that
// actually made it into the prompt.
func (g *Generator) buildContext(docs []models.Document) (string, []models.Document) {
	var sb strings.Builder
	used := make([]models.Document, 0, len(docs))
	tokens := 0

	for _, doc := range docs {
		docTokens, err := g.llm.GetTokenCount(doc.Content)
		if err != nil {
			// fall back to a rough estimate rather than dropping the document
			docTokens = len(strings.Fields(doc.Content))
		}
		if g.maxContextTokens > 0 && tokens+docTokens > g.maxContextTokens && len(used) > 0 {
			log.Debugf("Context token budget reached after %d documents", len(used))
			break
		}

		sb.WriteString(doc.Content)
		sb.WriteString("\n\n")
		tokens += docTokens
		used = append(used, doc)
	}

	return strings.TrimSuffix(sb.String(), "\n\n"), used
}

// historyToChatMessages converts stored turns into chat messages. Turns with
// an unknown role stay in the log for display but are not replayed to the
// completion service.
func historyToChatMessages(history []models.Message) []schema.ChatMessage {
	messages := make([]schema.ChatMessage, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case models.RoleUser:
			messages = append(messages, schema.HumanChatMessage{Content: msg.Content})
		case models.RoleAssistant:
			messages = append(messages, schema.AIChatMessage{Content: msg.Content})
		case models.RoleSystem:
			messages = append(messages, schema.SystemChatMessage{Content: msg.Content})
		default:
			log.Debugf("Skipping message %s with unknown role in prompt assembly", msg.UUID)
		}
	}
	return messages
}
