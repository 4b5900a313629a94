package club

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerInfo is a registered roster player.
type PlayerInfo struct {
	ID        string `json:"id"`
	ClubID    string `json:"club_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// MatchRecord is the persisted, immutable form of a completed match.
type MatchRecord struct {
	ID           string `json:"id"`
	ClubID       string `json:"club_id"`
	TeamA        string `json:"team_a"`
	TeamB        string `json:"team_b"`
	Overs        int    `json:"overs"`
	TossWinner   string `json:"toss_winner"`
	TossDecision string `json:"toss_decision"`
	TeamAScore   int    `json:"team_a_score"`
	TeamAWickets int    `json:"team_a_wickets"`
	TeamBScore   int    `json:"team_b_score"`
	TeamBWickets int    `json:"team_b_wickets"`
	Winner       string `json:"winner"`
	ManOfMatch   string `json:"man_of_match"`
	ManOfMatchID string `json:"man_of_match_id"`
	MatchDate    string `json:"match_date"`
}

// PlayerMatchStat is one player's line for one persisted match. The
// PlayerName, Winner, ManOfMatch and MatchDate fields are populated on reads
// only, joined in from the players table and the parent match; they are
// ignored on writes.
type PlayerMatchStat struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
	Team     string `json:"team"`
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
	Ones     int    `json:"ones"`
	Twos     int    `json:"twos"`
	Threes   int    `json:"threes"`
	Fours    int    `json:"fours"`
	Sixes    int    `json:"sixes"`

	PlayerName string `json:"player_name,omitempty"`
	TeamA      string `json:"team_a,omitempty"`
	TeamB      string `json:"team_b,omitempty"`
	Winner     string `json:"winner,omitempty"`
	ManOfMatch string `json:"man_of_match,omitempty"`
	MatchDate  string `json:"match_date,omitempty"`
}
