package session

import "github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"

// SessionStore persists in-progress scoring sessions so a restart in the
// middle of a match loses nothing.
type SessionStore interface {
	Save(state *cricket.MatchState) error
	Load(matchID string) (*Session, error)
	UpdateStatus(matchID string, status ProcessingStatus) error
	ListForProcessing() ([]*Session, error)
	Delete(matchID string) error
}
