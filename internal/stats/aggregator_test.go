package stats_test

import (
	"testing"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(matchID, playerID, name, team string, runs, wickets int) club.PlayerMatchStat {
	return club.PlayerMatchStat{
		MatchID:    matchID,
		PlayerID:   playerID,
		PlayerName: name,
		Team:       team,
		Runs:       runs,
		Wickets:    wickets,
		TeamA:      "Lions",
		TeamB:      "Tigers",
		Winner:     "Lions",
		ManOfMatch: "Arjun",
		MatchDate:  "2026-08-30",
	}
}

func newAggregator(store *club.MockStore) *stats.Aggregator {
	return stats.New(store, metrics.NewMock())
}

func TestPerPlayer(t *testing.T) {
	t.Run("sums rows across distinct matches", func(t *testing.T) {
		store := club.NewMock()
		store.GetPlayerFunc = func(id string) (*club.PlayerInfo, error) {
			return &club.PlayerInfo{ID: "p1", Name: "Arjun"}, nil
		}
		store.GetStatsForPlayerFunc = func(id string) ([]club.PlayerMatchStat, error) {
			return []club.PlayerMatchStat{
				row("m1", "p1", "Arjun", "Lions", 30, 1),
				row("m2", "p1", "Arjun", "Lions", 45, 0),
			}, nil
		}

		career, err := newAggregator(store).PerPlayer("p1")
		require.NoError(t, err)
		assert.Equal(t, 2, career.TotalMatches)
		assert.Equal(t, 75, career.TotalRuns)
		assert.Equal(t, 1, career.TotalWickets)
		assert.Equal(t, "37.50", career.BattingAverage)
		assert.Equal(t, "75.00", career.BowlingAverage)
		assert.Equal(t, 2, career.TotalWins)
		assert.Equal(t, "100.0%", career.WinPercentage)
		assert.Equal(t, 2, career.ManOfMatchCount, "man of the match is joined by current name")
	})

	t.Run("a duplicated row cannot inflate the match count", func(t *testing.T) {
		store := club.NewMock()
		store.GetPlayerFunc = func(id string) (*club.PlayerInfo, error) {
			return &club.PlayerInfo{ID: "p1", Name: "Arjun"}, nil
		}
		store.GetStatsForPlayerFunc = func(id string) ([]club.PlayerMatchStat, error) {
			return []club.PlayerMatchStat{
				row("m1", "p1", "Arjun", "Lions", 30, 0),
				row("m1", "p1", "Arjun", "Lions", 30, 0),
			}, nil
		}

		career, err := newAggregator(store).PerPlayer("p1")
		require.NoError(t, err)
		assert.Equal(t, 1, career.TotalMatches)
		assert.Equal(t, 1, career.TotalWins)
	})

	t.Run("zero matches yield the sentinels", func(t *testing.T) {
		store := club.NewMock()
		store.GetPlayerFunc = func(id string) (*club.PlayerInfo, error) {
			return &club.PlayerInfo{ID: "p9", Name: "Bench Warmer"}, nil
		}
		store.GetStatsForPlayerFunc = func(id string) ([]club.PlayerMatchStat, error) {
			return nil, nil
		}

		career, err := newAggregator(store).PerPlayer("p9")
		require.NoError(t, err)
		assert.Zero(t, career.TotalMatches)
		assert.Equal(t, "0.00", career.BattingAverage)
		assert.Equal(t, "N/A", career.BowlingAverage)
		assert.Equal(t, "0.0%", career.WinPercentage)
	})

	t.Run("a rename breaks historical man of the match attribution", func(t *testing.T) {
		store := club.NewMock()
		store.GetPlayerFunc = func(id string) (*club.PlayerInfo, error) {
			return &club.PlayerInfo{ID: "p1", Name: "Arjun K"}, nil // renamed after m1
		}
		store.GetStatsForPlayerFunc = func(id string) ([]club.PlayerMatchStat, error) {
			return []club.PlayerMatchStat{row("m1", "p1", "Arjun K", "Lions", 30, 0)}, nil
		}

		career, err := newAggregator(store).PerPlayer("p1")
		require.NoError(t, err)
		assert.Zero(t, career.ManOfMatchCount, "the match still records the old name")
	})

	t.Run("surfaces a row attributed to neither team", func(t *testing.T) {
		store := club.NewMock()
		store.GetPlayerFunc = func(id string) (*club.PlayerInfo, error) {
			return &club.PlayerInfo{ID: "p1", Name: "Arjun"}, nil
		}
		store.GetStatsForPlayerFunc = func(id string) ([]club.PlayerMatchStat, error) {
			bad := row("m1", "p1", "Arjun", "Bears", 30, 0)
			return []club.PlayerMatchStat{bad}, nil
		}

		career, err := newAggregator(store).PerPlayer("p1")
		assert.Nil(t, career)

		var intErr *stats.InconsistentDataError
		require.ErrorAs(t, err, &intErr)
		assert.Equal(t, "m1", intErr.MatchID)
	})
}

func TestAllPlayers(t *testing.T) {
	store := club.NewMock()
	store.GetStatsForClubFunc = func(clubID string) ([]club.PlayerMatchStat, error) {
		return []club.PlayerMatchStat{
			row("m1", "p1", "Arjun", "Lions", 30, 0),
			row("m1", "p2", "Deepak", "Tigers", 80, 2),
			row("m2", "p1", "Arjun", "Lions", 40, 1),
		}, nil
	}

	careers, err := newAggregator(store).AllPlayers("club1")
	require.NoError(t, err)
	require.Len(t, careers, 2, "players with no rows are omitted")

	assert.Equal(t, "Deepak", careers[0].PlayerName, "ordered by total runs descending")
	assert.Equal(t, 80, careers[0].TotalRuns)
	assert.Equal(t, 70, careers[1].TotalRuns)
	assert.Equal(t, 0, careers[0].TotalWins, "Deepak's team never won")
	assert.Equal(t, 2, careers[1].TotalWins)
}

func TestAllPlayers_Deterministic(t *testing.T) {
	store := club.NewMock()
	store.GetStatsForClubFunc = func(clubID string) ([]club.PlayerMatchStat, error) {
		return []club.PlayerMatchStat{
			row("m1", "p1", "Arjun", "Lions", 50, 0),
			row("m1", "p2", "Deepak", "Tigers", 50, 0),
			row("m1", "p3", "Chetan", "Tigers", 10, 0),
		}, nil
	}
	agg := newAggregator(store)

	first, err := agg.AllPlayers("club1")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := agg.AllPlayers("club1")
		require.NoError(t, err)
		assert.Equal(t, first, again, "unchanged history must aggregate identically")
	}
	assert.Equal(t, "Arjun", first[0].PlayerName, "run ties order by name")
}

func TestTopPerformers(t *testing.T) {
	store := club.NewMock()
	store.GetStatsForClubFunc = func(clubID string) ([]club.PlayerMatchStat, error) {
		return []club.PlayerMatchStat{
			row("m1", "p1", "Arjun", "Lions", 100, 0),
			row("m1", "p2", "Deepak", "Tigers", 100, 3),
			row("m2", "p3", "Chetan", "Lions", 40, 0),
		}, nil
	}
	agg := newAggregator(store)

	t.Run("all players tied at the maximum are returned", func(t *testing.T) {
		top, err := agg.TopPerformers("club1", stats.MetricRuns)
		require.NoError(t, err)
		require.Len(t, top, 2)

		names := []string{top[0].PlayerName, top[1].PlayerName}
		assert.Contains(t, names, "Arjun")
		assert.Contains(t, names, "Deepak")
	})

	t.Run("single leader for wickets", func(t *testing.T) {
		top, err := agg.TopPerformers("club1", stats.MetricWickets)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "Deepak", top[0].PlayerName)
	})

	t.Run("zero maxima yield an empty result", func(t *testing.T) {
		empty := club.NewMock()
		empty.GetStatsForClubFunc = func(clubID string) ([]club.PlayerMatchStat, error) {
			return []club.PlayerMatchStat{row("m1", "p1", "Arjun", "Lions", 0, 0)}, nil
		}
		top, err := newAggregator(empty).TopPerformers("club1", stats.MetricWickets)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("unknown metric is rejected", func(t *testing.T) {
		_, err := agg.TopPerformers("club1", stats.Metric("averages"))
		assert.Error(t, err)
	})
}
