package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new SessionStore.
func New(db *sql.DB) SessionStore {
	return &store{
		db: db,
	}
}

// Save upserts the session snapshot. The upsert is "dumb" about pipeline
// position: it only promotes SCORING to FINALIZED when the state is
// completed, and never moves a session that has already entered the pipeline
// backwards.
func (s *store) Save(state *cricket.MatchState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := msgpack.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal match state: %w", err)
	}

	status := StatusScoring
	if state.IsCompleted {
		status = StatusFinalized
	}

	_, err = s.db.Exec(`
		INSERT INTO match_sessions (match_id, club_id, processing_status, state_blob, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(match_id) DO UPDATE SET
			state_blob = excluded.state_blob,
			updated_at = excluded.updated_at,
			processing_status = CASE
				WHEN match_sessions.processing_status = 'SCORING' THEN excluded.processing_status
				ELSE match_sessions.processing_status
			END;
	`, state.MatchID, state.Config.ClubID, status, blob, time.Now().Unix())
	if err != nil {
		log.Error("Failed to save scoring session", "error", err, "matchID", state.MatchID)
		return err
	}
	return nil
}

func (s *store) Load(matchID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT match_id, club_id, processing_status, state_blob, updated_at
		FROM match_sessions WHERE match_id = ?
	`, matchID)

	sess, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scoring session %q not found", matchID)
		}
		log.Error("Failed to load scoring session", "error", err, "matchID", matchID)
		return nil, err
	}
	return sess, nil
}

func (s *store) UpdateStatus(matchID string, status ProcessingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE match_sessions SET processing_status = ?, updated_at = ? WHERE match_id = ?",
		status, time.Now().Unix(), matchID)
	return err
}

// ListForProcessing retrieves every finalized session that has not finished
// the completion pipeline.
func (s *store) ListForProcessing() ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT match_id, club_id, processing_status, state_blob, updated_at
		FROM match_sessions
		WHERE processing_status NOT IN (?, ?)
		ORDER BY updated_at, match_id
	`, StatusScoring, StatusDone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			log.Error("Failed to scan session row", "error", err)
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *store) Delete(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM match_sessions WHERE match_id = ?", matchID)
	if err != nil {
		log.Error("Failed to delete scoring session", "error", err, "matchID", matchID)
	}
	return err
}

func scanSession(scanner interface{ Scan(...any) error }) (*Session, error) {
	var sess Session
	var blob []byte
	if err := scanner.Scan(&sess.MatchID, &sess.ClubID, &sess.Status, &blob, &sess.UpdatedAt); err != nil {
		return nil, err
	}

	var state cricket.MatchState
	if err := msgpack.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match state for %s: %w", sess.MatchID, err)
	}
	sess.State = &state
	return &sess, nil
}
