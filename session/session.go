package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/notify"
	"github.com/raushankrgupta/tryon-studio/tryon"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the per-browser acquisition state: two slots, the scalar config,
// the history ledger, the toast queue and the submission coordinator. It is
// created empty at session start and dies with the process; nothing here is
// persisted.
type Session struct {
	ID          string
	Person      *Slot
	Garment     *Slot
	History     *HistoryLedger
	Notifier    *notify.Notifier
	Coordinator *tryon.Coordinator

	mu      sync.Mutex
	config  models.SubmissionConfig
	current *models.Result
}

// Slot resolves a slot by its wire name
func (s *Session) Slot(name string) (*Slot, error) {
	switch name {
	case "person":
		return s.Person, nil
	case "garment":
		return s.Garment, nil
	}
	return nil, fmt.Errorf("unknown slot %q", name)
}

// Publish records a completed result as the current one and appends it to
// the history ledger. Implements tryon.ResultSink.
func (s *Session) Publish(r models.Result) {
	s.mu.Lock()
	s.current = &r
	s.mu.Unlock()
	s.History.Prepend(r)
}

// CurrentResult returns the most recently published result, or nil
func (s *Session) CurrentResult() *models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// UpdateConfig replaces the scalar config. Edits made while a request is in
// flight only affect the next submission; the in-flight one already holds a
// snapshot.
func (s *Session) UpdateConfig(cfg models.SubmissionConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

// Config returns the current scalar config
func (s *Session) Config() models.SubmissionConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Manager hands out uuid-keyed sessions and looks them up for the API layer
type Manager struct {
	endpoint string
	darkFn   func() bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager. endpoint is the processing service
// URL handed to each session's coordinator; darkFn reports the persisted
// dark-mode preference for toast styling.
func NewManager(endpoint string, darkFn func() bool) *Manager {
	return &Manager{
		endpoint: endpoint,
		darkFn:   darkFn,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session: both slots empty in upload mode, default
// config, empty history.
func (m *Manager) Create() *Session {
	notifier := notify.NewNotifier(m.darkFn)
	sess := &Session{
		ID:          uuid.NewString(),
		Person:      NewSlot("person", "camera-capture.jpg"),
		Garment:     NewSlot("garment", "garment-capture.jpg"),
		History:     &HistoryLedger{},
		Notifier:    notifier,
		Coordinator: tryon.NewCoordinator(m.endpoint, notifier),
		config:      models.DefaultSubmissionConfig(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get looks up a session by ID
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
