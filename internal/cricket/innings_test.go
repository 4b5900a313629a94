package cricket_test

import (
	"testing"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildState(t *testing.T) *cricket.MatchState {
	t.Helper()
	state, err := cricket.Build(validConfig())
	require.NoError(t, err)
	return state
}

func TestUpdatePlayer(t *testing.T) {
	t.Run("sets counters for a batting-team player", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 42, 2))
		assert.Equal(t, 42, state.TeamAInnings.Entries[0].Runs)
		assert.Equal(t, 2, state.TeamAInnings.Entries[0].Wickets)
	})

	t.Run("clamps negative inputs to zero", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", -10, -3))
		assert.Zero(t, state.TeamAInnings.Entries[0].Runs)
		assert.Zero(t, state.TeamAInnings.Entries[0].Wickets)
	})

	t.Run("rejects players outside the batting roster", func(t *testing.T) {
		state := buildState(t)

		var upErr *cricket.UnknownPlayerError
		err := cricket.UpdatePlayer(state, "b1", 10, 0) // team B is not batting yet
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, "b1", upErr.PlayerID)

		err = cricket.UpdatePlayer(state, "nobody", 10, 0)
		assert.ErrorAs(t, err, &upErr)
	})

	t.Run("updates the chasing team in the second innings", func(t *testing.T) {
		state := buildState(t)
		cricket.Advance(state)
		require.Equal(t, 2, state.InningsNumber)

		require.NoError(t, cricket.UpdatePlayer(state, "b2", 7, 1))
		assert.Equal(t, 7, state.TeamBInnings.Entries[1].Runs)
	})
}

func TestInningsComplete(t *testing.T) {
	t.Run("fresh innings is not complete", func(t *testing.T) {
		state := buildState(t)
		assert.False(t, cricket.InningsComplete(state))
	})

	t.Run("all out when wickets reach roster size minus one", func(t *testing.T) {
		state := buildState(t) // 3 players per side
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 0, 1))
		assert.False(t, cricket.InningsComplete(state))
		require.NoError(t, cricket.UpdatePlayer(state, "a2", 0, 1))
		assert.True(t, cricket.InningsComplete(state))
	})

	t.Run("balls exhausted when runs plus wickets reach overs times six", func(t *testing.T) {
		cfg := validConfig()
		cfg.Overs = 2 // 12 balls
		state, err := cricket.Build(cfg)
		require.NoError(t, err)

		require.NoError(t, cricket.UpdatePlayer(state, "a1", 11, 0))
		assert.False(t, cricket.InningsComplete(state))
		require.NoError(t, cricket.UpdatePlayer(state, "a2", 0, 1))
		assert.True(t, cricket.InningsComplete(state))
	})

	t.Run("target reached closes only the second innings", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 30, 0))
		assert.False(t, cricket.InningsComplete(state))

		cricket.Advance(state)
		assert.Equal(t, 31, state.Target())
	})
}

func TestAdvance(t *testing.T) {
	t.Run("first advance opens the second innings", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 50, 0))

		cricket.Advance(state)
		assert.Equal(t, 2, state.InningsNumber)
		assert.False(t, state.IsCompleted)
		assert.Equal(t, 51, state.Target())
		assert.Equal(t, "Tigers", state.BattingTeam().Team)
	})

	t.Run("second advance resolves and completes the match", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 50, 0))
		cricket.Advance(state)
		require.NoError(t, cricket.UpdatePlayer(state, "b1", 20, 0))

		cricket.Advance(state)
		assert.True(t, state.IsCompleted)
		assert.Equal(t, "Lions", state.Winner)
		assert.Equal(t, "Arjun", state.ManOfMatch)
	})
}

func TestTargetReachedAutoCompletes(t *testing.T) {
	// Team A posts 150/5. Team B reaches 151 before running out of wickets
	// or balls, which must complete the match without an explicit advance.
	cfg := validConfig()
	cfg.Overs = 30
	state, err := cricket.Build(cfg)
	require.NoError(t, err)

	require.NoError(t, cricket.UpdatePlayer(state, "a1", 80, 2))
	require.NoError(t, cricket.UpdatePlayer(state, "a2", 70, 3))
	cricket.Advance(state)

	require.NoError(t, cricket.UpdatePlayer(state, "b1", 100, 0))
	assert.False(t, state.IsCompleted)

	require.NoError(t, cricket.UpdatePlayer(state, "b2", 51, 0))
	assert.True(t, cricket.InningsComplete(state))
	assert.True(t, state.IsCompleted)
	assert.Equal(t, "Tigers", state.Winner)
}

func TestCompletedStateIsTerminal(t *testing.T) {
	state := buildState(t)
	require.NoError(t, cricket.UpdatePlayer(state, "a1", 10, 0))
	cricket.Advance(state)
	require.NoError(t, cricket.UpdatePlayer(state, "b1", 11, 0))
	require.True(t, state.IsCompleted)

	winner, mom := state.Winner, state.ManOfMatch

	// Neither further updates nor further advances may change the outcome.
	require.NoError(t, cricket.UpdatePlayer(state, "b2", 500, 0))
	cricket.Advance(state)
	cricket.Advance(state)

	assert.Equal(t, winner, state.Winner)
	assert.Equal(t, mom, state.ManOfMatch)
	assert.Equal(t, 2, state.InningsNumber)
	assert.Zero(t, state.TeamBInnings.Entries[1].Runs, "updates after completion must be ignored")
}
