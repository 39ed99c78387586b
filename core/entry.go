package core

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author category of a conversation entry.
type Role string

const (
	// RoleUser marks an entry authored by the end user.
	RoleUser Role = "user"
	// RoleAssistant marks an entry authored by the coordinator on behalf of
	// the agent team.
	RoleAssistant Role = "assistant"
	// RoleSystem marks internal coordination or error entries.
	RoleSystem Role = "system"
)

// ConversationEntry is a single record in a session's conversation log. After
// it has been appended to a session it must be treated as immutable.
type ConversationEntry struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Agent     string    `json:"agent"`
	Timestamp time.Time `json:"timestamp"`
}

// NewConversationEntry creates an entry authored by 'agent' with the given
// role and content. Prefer the role-specific helpers at call sites.
func NewConversationEntry(role Role, content, agent string) ConversationEntry {
	return ConversationEntry{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Agent:     agent,
		Timestamp: time.Now().UTC(),
	}
}

// NewUserEntry creates a user-authored conversation entry.
func NewUserEntry(content string) ConversationEntry {
	return NewConversationEntry(RoleUser, content, "user")
}

// NewAssistantEntry creates a coordinator-authored response entry.
func NewAssistantEntry(content string) ConversationEntry {
	return NewConversationEntry(RoleAssistant, content, "coordinator")
}

// NewSystemEntry creates an internal entry (delegation notices, errors).
func NewSystemEntry(content, agent string) ConversationEntry {
	return NewConversationEntry(RoleSystem, content, agent)
}

// NewID generates a new unique identifier for conversation entries.
func NewID() string { return uuid.NewString() }
