package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
)

// Aggregator folds the persisted match history into career figures. All
// queries recompute from scratch; running the same query twice against an
// unchanged history yields byte-identical results.
type Aggregator struct {
	store   Store
	metrics metrics.Metrics
}

// New creates a new Aggregator.
func New(store Store, metrics metrics.Metrics) *Aggregator {
	return &Aggregator{
		store:   store,
		metrics: metrics,
	}
}

// PerPlayer computes one player's career record. A player with no recorded
// matches gets zero totals and the sentinel rates.
func (a *Aggregator) PerPlayer(playerID string) (*PlayerCareerStats, error) {
	start := time.Now()
	defer func() {
		a.metrics.ObserveAggregationDuration(time.Since(start).Seconds())
	}()
	a.metrics.IncStatsQueries()

	player, err := a.store.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	rows, err := a.store.GetStatsForPlayer(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stat rows for player %s: %w", playerID, err)
	}

	career := &PlayerCareerStats{PlayerID: player.ID, PlayerName: player.Name}
	seenMatches := make(map[string]bool)
	for _, row := range rows {
		if err := checkRow(row); err != nil {
			return nil, err
		}
		foldRow(career, row, seenMatches, player.Name)
	}
	finalize(career)

	log.Debug("Computed career stats", "playerID", playerID, "matches", career.TotalMatches)
	return career, nil
}

// AllPlayers computes career records for every club player with at least one
// recorded match, ordered by total runs descending. Players who never played
// are omitted rather than zero-filled; the roster view is GetAllPlayers.
func (a *Aggregator) AllPlayers(clubID string) ([]PlayerCareerStats, error) {
	start := time.Now()
	defer func() {
		a.metrics.ObserveAggregationDuration(time.Since(start).Seconds())
	}()
	a.metrics.IncStatsQueries()

	rows, err := a.store.GetStatsForClub(clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stat rows for club %s: %w", clubID, err)
	}

	careers := make(map[string]*PlayerCareerStats)
	seen := make(map[string]map[string]bool)
	for _, row := range rows {
		if err := checkRow(row); err != nil {
			return nil, err
		}
		career, ok := careers[row.PlayerID]
		if !ok {
			career = &PlayerCareerStats{PlayerID: row.PlayerID, PlayerName: row.PlayerName}
			careers[row.PlayerID] = career
			seen[row.PlayerID] = make(map[string]bool)
		}
		foldRow(career, row, seen[row.PlayerID], row.PlayerName)
	}

	out := make([]PlayerCareerStats, 0, len(careers))
	for _, career := range careers {
		finalize(career)
		out = append(out, *career)
	}
	// Deterministic order: runs desc, then name, then id as the final tie-break.
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRuns != out[j].TotalRuns {
			return out[i].TotalRuns > out[j].TotalRuns
		}
		if out[i].PlayerName != out[j].PlayerName {
			return out[i].PlayerName < out[j].PlayerName
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

// TopPerformers returns every club player tied at the maximum of the given
// metric. Players with a zero value never top the list; when nobody has a
// non-zero value the result is empty.
func (a *Aggregator) TopPerformers(clubID string, metric Metric) ([]PlayerCareerStats, error) {
	careers, err := a.AllPlayers(clubID)
	if err != nil {
		return nil, err
	}

	value, err := metricValue(metric)
	if err != nil {
		return nil, err
	}

	max := 0
	for _, c := range careers {
		if v := value(c); v > max {
			max = v
		}
	}
	if max == 0 {
		return []PlayerCareerStats{}, nil
	}

	var top []PlayerCareerStats
	for _, c := range careers {
		if value(c) == max {
			top = append(top, c)
		}
	}
	return top, nil
}

func metricValue(metric Metric) (func(PlayerCareerStats) int, error) {
	switch metric {
	case MetricRuns:
		return func(c PlayerCareerStats) int { return c.TotalRuns }, nil
	case MetricWickets:
		return func(c PlayerCareerStats) int { return c.TotalWickets }, nil
	case MetricWins:
		return func(c PlayerCareerStats) int { return c.TotalWins }, nil
	case MetricMoM:
		return func(c PlayerCareerStats) int { return c.ManOfMatchCount }, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
}

func checkRow(row club.PlayerMatchStat) error {
	if row.Team != row.TeamA && row.Team != row.TeamB {
		return &InconsistentDataError{MatchID: row.MatchID, PlayerID: row.PlayerID, Team: row.Team}
	}
	return nil
}

// foldRow accumulates one stat row. Matches are counted by distinct match id
// so an unexpected duplicate row cannot inflate the match count. The
// man-of-the-match join is by the player's current name; renames invalidate
// attribution for matches recorded before the rename.
func foldRow(career *PlayerCareerStats, row club.PlayerMatchStat, seenMatches map[string]bool, playerName string) {
	if !seenMatches[row.MatchID] {
		seenMatches[row.MatchID] = true
		career.TotalMatches++
		if row.Winner == row.Team {
			career.TotalWins++
		}
		if row.ManOfMatch == playerName {
			career.ManOfMatchCount++
		}
	}
	career.TotalRuns += row.Runs
	career.TotalWickets += row.Wickets
	career.Ones += row.Ones
	career.Twos += row.Twos
	career.Threes += row.Threes
	career.Fours += row.Fours
	career.Sixes += row.Sixes
}

func finalize(career *PlayerCareerStats) {
	if career.TotalMatches > 0 {
		career.BattingAverage = fmt.Sprintf("%.2f", float64(career.TotalRuns)/float64(career.TotalMatches))
		career.WinPercentage = fmt.Sprintf("%.1f%%", 100*float64(career.TotalWins)/float64(career.TotalMatches))
	} else {
		career.BattingAverage = "0.00"
		career.WinPercentage = "0.0%"
	}
	if career.TotalWickets > 0 {
		career.BowlingAverage = fmt.Sprintf("%.2f", float64(career.TotalRuns)/float64(career.TotalWickets))
	} else {
		career.BowlingAverage = "N/A"
	}
}
