package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reviewlens/reviewlens/pkg/models"
)

// ConversationMemory is the append-only log of turns for one session.
// Turns are never reordered or deleted mid-session; the memory is discarded
// with the session. Safe for concurrent use, though callers are expected to
// serialize answer generation per session so user/assistant pairs stay
// adjacent.
type ConversationMemory struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{}
}

// Append adds a single turn to the end of the log. Unrecognized role strings
// are preserved as models.RoleUnknown rather than rejected.
func (m *ConversationMemory) Append(role models.Role, content string) models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.append(role, content)
}

// AppendExchange appends a user question and its assistant answer under one
// lock, so no other turn can interleave between the pair.
func (m *ConversationMemory) AppendExchange(question, answer string) (models.Message, models.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userMsg := m.append(models.RoleUser, question)
	assistantMsg := m.append(models.RoleAssistant, answer)
	return userMsg, assistantMsg
}

func (m *ConversationMemory) append(role models.Role, content string) models.Message {
	switch role {
	case models.RoleUser, models.RoleAssistant, models.RoleSystem:
	default:
		role = models.RoleUnknown
	}

	msg := models.Message{
		UUID:      uuid.New(),
		CreatedAt: time.Now(),
		Role:      role,
		Content:   content,
	}
	m.messages = append(m.messages, msg)
	return msg
}

// History returns a copy of all turns in the order they were appended.
func (m *ConversationMemory) History() []models.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]models.Message, len(m.messages))
	copy(history, m.messages)
	return history
}

// LastN returns a copy of the most recent n turns in chronological order.
func (m *ConversationMemory) LastN(n int) []models.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 || n > len(m.messages) {
		n = len(m.messages)
	}
	history := make([]models.Message, n)
	copy(history, m.messages[len(m.messages)-n:])
	return history
}

func (m *ConversationMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}
