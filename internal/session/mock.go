package session

import (
	"fmt"
	"sync"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
)

// MockStore is a mock implementation of the SessionStore interface for
// testing. It keeps sessions in memory and records calls.
type MockStore struct {
	mu sync.Mutex

	SaveFunc              func(state *cricket.MatchState) error
	LoadFunc              func(matchID string) (*Session, error)
	UpdateStatusFunc      func(matchID string, status ProcessingStatus) error
	ListForProcessingFunc func() ([]*Session, error)
	DeleteFunc            func(matchID string) error

	SaveCalls         []*cricket.MatchState
	UpdateStatusCalls []struct {
		MatchID string
		Status  ProcessingStatus
	}
	DeleteCalls []string

	sessions map[string]*Session
}

var _ SessionStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{sessions: make(map[string]*Session)}
}

func (m *MockStore) Save(state *cricket.MatchState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, state)
	if m.SaveFunc != nil {
		return m.SaveFunc(state)
	}
	status := StatusScoring
	if state.IsCompleted {
		status = StatusFinalized
	}
	if existing, ok := m.sessions[state.MatchID]; ok && existing.Status != StatusScoring {
		status = existing.Status
	}
	m.sessions[state.MatchID] = &Session{
		MatchID: state.MatchID,
		ClubID:  state.Config.ClubID,
		Status:  status,
		State:   state,
	}
	return nil
}

func (m *MockStore) Load(matchID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(matchID)
	}
	sess, ok := m.sessions[matchID]
	if !ok {
		return nil, fmt.Errorf("scoring session %q not found", matchID)
	}
	return sess, nil
}

func (m *MockStore) UpdateStatus(matchID string, status ProcessingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, struct {
		MatchID string
		Status  ProcessingStatus
	}{matchID, status})
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(matchID, status)
	}
	if sess, ok := m.sessions[matchID]; ok {
		sess.Status = status
	}
	return nil
}

func (m *MockStore) ListForProcessing() ([]*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListForProcessingFunc != nil {
		return m.ListForProcessingFunc()
	}
	var out []*Session
	for _, sess := range m.sessions {
		if sess.Status != StatusScoring && sess.Status != StatusDone {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (m *MockStore) Delete(matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, matchID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(matchID)
	}
	delete(m.sessions, matchID)
	return nil
}
