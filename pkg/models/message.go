package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	// RoleUnknown is surfaced for any role string we don't recognize,
	// rather than failing or silently folding it into another role.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a role string to a Role, case-insensitively.
func ParseRole(role string) Role {
	switch role {
	case "user", "User", "human", "Human":
		return RoleUser
	case "assistant", "Assistant", "ai", "AI":
		return RoleAssistant
	case "system", "System":
		return RoleSystem
	default:
		return RoleUnknown
	}
}

type Message struct {
	UUID       uuid.UUID `json:"uuid"`
	CreatedAt  time.Time `json:"created_at"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	TokenCount int       `json:"token_count"`
}
