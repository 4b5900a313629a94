package club_test

import (
	"database/sql"
	"testing"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := club.New(db)
	require.NoError(t, store.EnsureClub("club1", "Test CC"))

	return store, db, dbTeardown
}

func completedMatch(id string) club.MatchRecord {
	return club.MatchRecord{
		ID:           id,
		ClubID:       "club1",
		TeamA:        "Lions",
		TeamB:        "Tigers",
		Overs:        20,
		TossWinner:   "Lions",
		TossDecision: "bat",
		TeamAScore:   120,
		TeamAWickets: 4,
		TeamBScore:   100,
		TeamBWickets: 6,
		Winner:       "Lions",
		ManOfMatch:   "Arjun",
		ManOfMatchID: "p1",
		MatchDate:    "2026-08-30",
	}
}

func matchRows(matchID string) []club.PlayerMatchStat {
	return []club.PlayerMatchStat{
		{MatchID: matchID, PlayerID: "p1", Team: "Lions", Runs: 120, Wickets: 4, Fours: 10, Sixes: 4},
		{MatchID: matchID, PlayerID: "p2", Team: "Tigers", Runs: 100, Wickets: 6},
	}
}

func seedPlayers(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO players (id, club_id, name) VALUES
		('p1', 'club1', 'Arjun'),
		('p2', 'club1', 'Deepak')`)
	require.NoError(t, err)
}

func TestAddAndGetPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p1, err := store.AddPlayer("club1", "Arjun")
	require.NoError(t, err)
	assert.NotEmpty(t, p1.ID)

	_, err = store.AddPlayer("club1", "Bharat")
	require.NoError(t, err)

	players, err := store.GetAllPlayers("club1")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Arjun", players[0].Name, "players are ordered by name")

	got, err := store.GetPlayer(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun", got.Name)
}

func TestAddPlayer_DuplicateNameRejected(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddPlayer("club1", "Arjun")
	require.NoError(t, err)
	_, err = store.AddPlayer("club1", "Arjun")
	assert.Error(t, err, "a name is unique within a club")
}

func TestRenamePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.AddPlayer("club1", "Arjun")
	require.NoError(t, err)

	require.NoError(t, store.RenamePlayer(p.ID, "Arjun K"))
	got, err := store.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun K", got.Name)

	assert.Error(t, store.RenamePlayer("missing", "x"))
}

func TestInsertMatchWithStats(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	match := completedMatch("m1")
	require.NoError(t, store.InsertMatchWithStats(match, matchRows("m1")))

	got, err := store.GetMatch("m1")
	require.NoError(t, err)
	assert.Equal(t, "Lions", got.Winner)
	assert.Equal(t, 120, got.TeamAScore)

	rows, err := store.GetStatsForMatch("m1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Lions", rows[0].Winner, "stat reads join the parent match winner")
	assert.Equal(t, "Arjun", rows[0].ManOfMatch)
	assert.Equal(t, "2026-08-30", rows[0].MatchDate)
}

func TestInsertMatchWithStats_IdempotentOnMatchID(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	match := completedMatch("m1")
	require.NoError(t, store.InsertMatchWithStats(match, matchRows("m1")))
	// A retry after a reported failure must not produce a duplicate.
	require.NoError(t, store.InsertMatchWithStats(match, matchRows("m1")))

	var matchCount, rowCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&matchCount))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM match_player_stats").Scan(&rowCount))
	assert.Equal(t, 1, matchCount)
	assert.Equal(t, 2, rowCount)
}

func TestInsertMatchWithStats_RejectsUnreconciledRows(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	t.Run("row sums must equal team scores", func(t *testing.T) {
		rows := matchRows("m1")
		rows[0].Runs = 90 // match says 120
		err := store.InsertMatchWithStats(completedMatch("m1"), rows)
		require.Error(t, err)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count))
		assert.Zero(t, count, "nothing may be written on a failed reconciliation")
	})

	t.Run("row team must belong to the match", func(t *testing.T) {
		rows := matchRows("m1")
		rows[1].Team = "Bears"
		err := store.InsertMatchWithStats(completedMatch("m1"), rows)
		assert.Error(t, err)
	})
}

func TestInsertMatchWithStats_RollsBackOnBadRow(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	// p3 does not exist, so the second row violates the foreign key and the
	// whole transaction, match record included, must roll back.
	match := completedMatch("m1")
	rows := []club.PlayerMatchStat{
		{PlayerID: "p1", Team: "Lions", Runs: 120, Wickets: 4},
		{PlayerID: "p3", Team: "Tigers", Runs: 100, Wickets: 6},
	}
	err := store.InsertMatchWithStats(match, rows)
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count))
	assert.Zero(t, count)
}

func TestDeleteMatchCascades(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	require.NoError(t, store.InsertMatchWithStats(completedMatch("m1"), matchRows("m1")))
	require.NoError(t, store.DeleteMatch("m1"))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM match_player_stats").Scan(&count))
	assert.Zero(t, count)
}

func TestRemovePlayerCascadesStatRows(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	require.NoError(t, store.InsertMatchWithStats(completedMatch("m1"), matchRows("m1")))
	require.NoError(t, store.RemovePlayer("p1"))

	var rowCount, matchCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM match_player_stats").Scan(&rowCount))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&matchCount))
	assert.Equal(t, 1, rowCount, "only the removed player's rows go")
	assert.Equal(t, 1, matchCount, "the match record stays")
}

func TestGetStatsForPlayer(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)

	require.NoError(t, store.InsertMatchWithStats(completedMatch("m1"), matchRows("m1")))

	m2 := completedMatch("m2")
	m2.MatchDate = "2026-08-31"
	m2.TeamAScore, m2.TeamAWickets = 45, 0
	m2.TeamBScore, m2.TeamBWickets = 30, 2
	require.NoError(t, store.InsertMatchWithStats(m2, []club.PlayerMatchStat{
		{PlayerID: "p1", Team: "Lions", Runs: 45},
		{PlayerID: "p2", Team: "Tigers", Runs: 30, Wickets: 2},
	}))

	rows, err := store.GetStatsForPlayer("p1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "m1", rows[0].MatchID, "rows come back in match-date order")
	assert.Equal(t, 120, rows[0].Runs)
	assert.Equal(t, 45, rows[1].Runs)
	assert.Equal(t, "Arjun", rows[0].PlayerName, "the player's current name is joined in")
}

func TestClear(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	seedPlayers(t, db)
	require.NoError(t, store.InsertMatchWithStats(completedMatch("m1"), matchRows("m1")))

	store.Clear()

	players, err := store.GetAllPlayers("club1")
	require.NoError(t, err)
	assert.Empty(t, players)

	matches, err := store.GetAllMatches("club1")
	require.NoError(t, err)
	assert.Empty(t, matches)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM match_player_stats").Scan(&count))
	assert.Zero(t, count)
}
