package stats

import (
	"fmt"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
)

// Metric names a career figure the top-performer queries can rank by.
type Metric string

const (
	MetricRuns    Metric = "runs"
	MetricWickets Metric = "wickets"
	MetricWins    Metric = "wins"
	MetricMoM     Metric = "mom"
)

// PlayerCareerStats is the derived career record for one player. It is never
// persisted; it is recomputed from the match history on every query.
type PlayerCareerStats struct {
	PlayerID        string `json:"player_id"`
	PlayerName      string `json:"player_name"`
	TotalMatches    int    `json:"total_matches"`
	TotalRuns       int    `json:"total_runs"`
	TotalWickets    int    `json:"total_wickets"`
	TotalWins       int    `json:"total_wins"`
	ManOfMatchCount int    `json:"man_of_match_count"`
	Ones            int    `json:"ones"`
	Twos            int    `json:"twos"`
	Threes          int    `json:"threes"`
	Fours           int    `json:"fours"`
	Sixes           int    `json:"sixes"`

	// Formatted rates. BowlingAverage here is career runs per wicket taken,
	// since delivery-level figures are never recorded.
	BattingAverage string `json:"batting_average"`
	BowlingAverage string `json:"bowling_average"`
	WinPercentage  string `json:"win_percentage"`
}

// InconsistentDataError is a data-integrity fault: a stat row that cannot be
// attributed to either team of its parent match. The aggregator surfaces it
// instead of silently folding bad rows into averages.
type InconsistentDataError struct {
	MatchID  string
	PlayerID string
	Team     string
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("stat row for player %s in match %s names team %q, which is not part of that match", e.PlayerID, e.MatchID, e.Team)
}

// Store is the slice of the club store the aggregator reads from.
type Store interface {
	GetPlayer(playerID string) (*club.PlayerInfo, error)
	GetStatsForPlayer(playerID string) ([]club.PlayerMatchStat, error)
	GetStatsForClub(clubID string) ([]club.PlayerMatchStat, error)
}
