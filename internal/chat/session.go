// Package chat holds the per-session conversation state and the
// assistant that orchestrates prompt building and model calls.
package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Role tags one side of the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message.
type Turn struct {
	Role    Role
	Content string
}

// Session is the append-only ordered log of turns for one interactive
// session. It is never persisted; clearing it is the only way to shrink
// it. Rendering is always a full replay in insertion order.
type Session struct {
	mu    sync.Mutex
	id    string
	turns []Turn
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Append adds one turn at the end. Order is preserved; nothing is ever
// reordered or deduplicated.
func (s *Session) Append(role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// History returns a copy of all turns in insertion order.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Clear empties the log. There is no undo.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
