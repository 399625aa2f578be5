package model

import (
	"time"
)

// Role of a conversation turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Sentiment is the polarity attached to a user message at ingest time.
type Sentiment struct {
	Score     float64 `json:"score"`     // -1 (very negative) .. 1 (very positive)
	Magnitude float64 `json:"magnitude"` // 0 (no emotion) .. 1 (very emotional)
}

// Message is one turn in a conversation. Immutable once appended; insertion
// order is chronological order.
type Message struct {
	SessionID string     `json:"-"`
	Role      string     `json:"role"` // "user" | "assistant"
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Sentiment *Sentiment `json:"sentiment,omitempty"`
}

// CrisisEvent records one detected crisis signal. Severity is never "none":
// the absence of crisis is the absence of an event. Events are append-only.
type CrisisEvent struct {
	SessionID        string    `json:"-"`
	Severity         string    `json:"severity"` // low | medium | high | critical
	Keywords         []string  `json:"keywords"`
	Score            float64   `json:"score"`
	Timestamp        time.Time `json:"timestamp"`
	ResponseProvided bool      `json:"responseProvided"`
}

// Preferences carried per session.
type Preferences struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// Session is the aggregate root for an anonymous wellness conversation.
type Session struct {
	ID          string        `json:"sessionId"`
	History     []Message     `json:"conversationHistory"`
	MoodEntries []MoodEntry   `json:"moodEntries"`
	CrisisLog   []CrisisEvent `json:"crisisEvents"`
	Preferences Preferences   `json:"preferences"`
	LastActive  time.Time     `json:"lastActive"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func NewSession(id, language string) *Session {
	if language == "" {
		language = "en"
	}
	now := time.Now()
	return &Session{
		ID:          id,
		History:     make([]Message, 0, 8),
		Preferences: Preferences{Language: language, Notifications: true},
		LastActive:  now,
		CreatedAt:   now,
	}
}

func (s *Session) AddMessage(role, content string, sentiment *Sentiment) *Message {
	s.History = append(s.History, Message{
		SessionID: s.ID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Sentiment: sentiment,
	})
	s.LastActive = time.Now()
	return &s.History[len(s.History)-1]
}

func (s *Session) AddCrisisEvent(severity string, keywords []string, score float64) *CrisisEvent {
	s.CrisisLog = append(s.CrisisLog, CrisisEvent{
		SessionID:        s.ID,
		Severity:         severity,
		Keywords:         keywords,
		Score:            score,
		Timestamp:        time.Now(),
		ResponseProvided: true,
	})
	return &s.CrisisLog[len(s.CrisisLog)-1]
}

// RecentMessages returns the trailing n messages in chronological order.
func (s *Session) RecentMessages(n int) []Message {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
