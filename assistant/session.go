// Package assistant implements the chat-style AI assistant: a conversational
// session over a chat-completion backend, plus the speech-to-text input
// controller feeding its pending message.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/logging"
	"github.com/hearthdash/hearth/store"
)

// CredentialKey is the store namespace holding the user's API credential.
const CredentialKey = "assistant.apiKey"

// FallbackReply is appended when a successful response carries no content.
const FallbackReply = "Sorry, I could not generate a response."

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn half in the conversation. Messages are append-only for
// the life of a session; Clear is the only bulk mutation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session manages the conversation: message history, the credential gate, and
// the single in-flight request guarantee. The loading flag acts as a mutex:
// a second Send while loading is a pure no-op, never queued.
type Session struct {
	mu         sync.Mutex
	credential string
	messages   []Message
	loading    bool

	client *Client
	store  *store.Store
	log    *logrus.Entry
	now    func() time.Time
}

// NewSession creates a session, restoring any persisted credential.
func NewSession(st *store.Store, client *Client) *Session {
	s := &Session{
		client: client,
		store:  st,
		log:    logging.NewLogger("assistant"),
		now:    time.Now,
	}
	if st != nil {
		var cred string
		if st.Get(CredentialKey, &cred) {
			s.credential = cred
		}
	}
	return s
}

// Send processes one user turn. Blank text or an in-flight request is a pure
// no-op. A missing credential aborts before any network traffic. On transport
// failure the user's message stays in history, no assistant message is
// appended, and the session is ready for the next attempt.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if text == "" || s.loading {
		s.mu.Unlock()
		return nil
	}
	if s.credential == "" {
		s.mu.Unlock()
		return errors.CredentialMissing()
	}
	// Credential-only sessions (CLI key management) never chat.
	if s.client == nil {
		s.mu.Unlock()
		return errors.New(errors.ErrCodeInternal, "session has no completion client")
	}

	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   text,
		Timestamp: s.now(),
	})
	s.loading = true
	credential := s.credential
	s.mu.Unlock()

	reply, err := s.client.Complete(ctx, credential, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.log.WithError(err).Warn("chat completion failed")
		return err
	}

	if reply == "" {
		reply = FallbackReply
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	})
	return nil
}

// Messages returns a snapshot of the conversation.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Clear empties the message list atomically. The credential is untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// SetCredential trims and persists the credential. Blank input is rejected
// without touching the stored value.
func (s *Session) SetCredential(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New(errors.ErrCodeInvalidInput, "credential must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = value
	if s.store != nil {
		return s.store.Set(CredentialKey, value)
	}
	return nil
}

// ReloadCredential re-reads the persisted credential, picking up edits made
// by another process.
func (s *Session) ReloadCredential() {
	if s.store == nil {
		return
	}
	var cred string
	if s.store.Get(CredentialKey, &cred) {
		s.mu.Lock()
		s.credential = cred
		s.mu.Unlock()
	}
}

// HasCredential reports whether a credential is configured.
func (s *Session) HasCredential() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential != ""
}
