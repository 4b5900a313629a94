package session

import (
	"database/sql"
	"sync"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
)

// store handles database operations for scoring sessions.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ProcessingStatus tracks how far a match has moved through the completion
// pipeline. A session starts at SCORING, becomes FINALIZED the moment the
// engine completes the match, and then advances one step at a time until DONE.
type ProcessingStatus string

const (
	StatusScoring        ProcessingStatus = "SCORING"
	StatusFinalized      ProcessingStatus = "FINALIZED"
	StatusPersisted      ProcessingStatus = "PERSISTED"
	StatusStatsNotified  ProcessingStatus = "STATS_NOTIFIED"
	StatusResultNotified ProcessingStatus = "RESULT_NOTIFIED"
	StatusDone           ProcessingStatus = "DONE"
)

// Session is a stored scoring session: the serialized MatchState plus its
// position in the pipeline.
type Session struct {
	MatchID   string              `json:"match_id"`
	ClubID    string              `json:"club_id"`
	Status    ProcessingStatus    `json:"processing_status"`
	State     *cricket.MatchState `json:"state"`
	UpdatedAt int64               `json:"updated_at"`
}
