package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxPageVisits bounds the navigation history kept per session.
const MaxPageVisits = 20

// DefaultPage is the page a new session starts on.
const DefaultPage = "Home"

// VoiceGreeting seeds the voice assistant history.
const VoiceGreeting = "Hello! I'm your EduGauge Voice Assistant. How can I help you today?"

// Chat roles used in the voice history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the voice assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the state of the single teacher using this process. It is
// built once at startup and shared by reference; all methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	id                uuid.UUID
	username          string
	role              string
	currentPage       string
	pageVisits        []string
	voiceHistory      []ChatMessage
	adoptedTrends     []int
	integratedUpdates []int
	lastAIInteraction time.Time
}

// SessionSnapshot is an immutable copy of a Session.
type SessionSnapshot struct {
	ID                uuid.UUID     `json:"id"`
	Username          string        `json:"username"`
	Role              string        `json:"role"`
	CurrentPage       string        `json:"current_page"`
	PageVisits        []string      `json:"page_visits"`
	VoiceHistory      []ChatMessage `json:"voice_history"`
	AdoptedTrends     []int         `json:"adopted_trends"`
	IntegratedUpdates []int         `json:"integrated_updates"`
	LastAIInteraction *time.Time    `json:"last_ai_interaction,omitempty"`
}

// NewSession creates a session on DefaultPage with the voice greeting in place.
func NewSession(username, role string) *Session {
	return &Session{
		id:           uuid.New(),
		username:     username,
		role:         role,
		currentPage:  DefaultPage,
		pageVisits:   []string{DefaultPage},
		voiceHistory: []ChatMessage{{Role: RoleAssistant, Content: VoiceGreeting}},
	}
}

// VisitPage makes page current and appends it to the visit history unless it
// repeats the last entry. The oldest entry is dropped beyond MaxPageVisits.
func (s *Session) VisitPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = page
	if n := len(s.pageVisits); n > 0 && s.pageVisits[n-1] == page {
		return
	}
	s.pageVisits = append(s.pageVisits, page)
	if len(s.pageVisits) > MaxPageVisits {
		s.pageVisits = s.pageVisits[len(s.pageVisits)-MaxPageVisits:]
	}
}

// AppendChat adds a voice assistant turn.
func (s *Session) AppendChat(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voiceHistory = append(s.voiceHistory, ChatMessage{Role: role, Content: content})
}

// RecordAdoption appends a trend ID to the adoption history.
func (s *Session) RecordAdoption(trendID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adoptedTrends = append(s.adoptedTrends, trendID)
}

// RecordIntegration appends a content update ID to the integration history.
func (s *Session) RecordIntegration(updateID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.integratedUpdates = append(s.integratedUpdates, updateID)
}

// RecordAIInteraction stamps the time of the latest generation request.
func (s *Session) RecordAIInteraction(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAIInteraction = at
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		ID:                s.id,
		Username:          s.username,
		Role:              s.role,
		CurrentPage:       s.currentPage,
		PageVisits:        append([]string(nil), s.pageVisits...),
		VoiceHistory:      append([]ChatMessage(nil), s.voiceHistory...),
		AdoptedTrends:     append([]int(nil), s.adoptedTrends...),
		IntegratedUpdates: append([]int(nil), s.integratedUpdates...),
	}
	if !s.lastAIInteraction.IsZero() {
		at := s.lastAIInteraction
		snap.LastAIInteraction = &at
	}
	return snap
}
