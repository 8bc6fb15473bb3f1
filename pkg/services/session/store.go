package session

import (
	"errors"
	"sync"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type state struct {
	inputs      domain.ReportInputs
	attachments map[domain.AttachmentCategory]domain.TableLoadResult
}

// Store holds per-session form state. Each session is isolated; saves
// replace the inputs wholesale, never partially.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*state)}
}

// Create opens a new session seeded with the form defaults and returns
// its id.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &state{
		inputs:      domain.DefaultInputs(),
		attachments: make(map[domain.AttachmentCategory]domain.TableLoadResult),
	}
	return id
}

func (s *Store) Get(id string) (domain.ReportInputs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[id]
	if !ok {
		return domain.ReportInputs{}, ErrSessionNotFound
	}
	return st.inputs, nil
}

// Save overwrites the session's inputs wholesale.
func (s *Store) Save(id string, in domain.ReportInputs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	st.inputs = in
	return nil
}

// Attach records the load result for one attachment category, replacing
// any previous upload of the same category.
func (s *Store) Attach(id string, category domain.AttachmentCategory, result domain.TableLoadResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	st.attachments[category] = result
	return nil
}

// Attachment returns the stored load result for a category, or nil when
// nothing was uploaded.
func (s *Store) Attachment(id string, category domain.AttachmentCategory) (*domain.TableLoadResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	result, ok := st.attachments[category]
	if !ok {
		return nil, nil
	}
	return &result, nil
}
