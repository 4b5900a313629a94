package cricket_test

import (
	"testing"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("higher total wins", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 60, 0))
		cricket.Advance(state)
		require.NoError(t, cricket.UpdatePlayer(state, "b1", 40, 0))

		outcome := cricket.Resolve(state)
		assert.Equal(t, "Lions", outcome.Winner)
	})

	t.Run("equal totals are a tie", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 60, 0))
		cricket.Advance(state)
		require.NoError(t, cricket.UpdatePlayer(state, "b1", 30, 0))
		require.NoError(t, cricket.UpdatePlayer(state, "b2", 30, 0))

		outcome := cricket.Resolve(state)
		assert.Equal(t, cricket.ResultTie, outcome.Winner)
	})

	t.Run("man of the match is highest combined runs and wickets", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a1", 20, 1))
		require.NoError(t, cricket.UpdatePlayer(state, "a2", 5, 0))
		cricket.Advance(state)
		require.NoError(t, cricket.UpdatePlayer(state, "b1", 10, 5)) // 15 combined

		outcome := cricket.Resolve(state)
		assert.Equal(t, "Arjun", outcome.ManOfMatch) // 21 combined
		assert.Equal(t, "a1", outcome.ManOfMatchID)
	})

	t.Run("man of the match tie goes to the first player in entry order", func(t *testing.T) {
		state := buildState(t)
		require.NoError(t, cricket.UpdatePlayer(state, "a2", 12, 0))
		cricket.Advance(state)
		require.NoError(t, cricket.UpdatePlayer(state, "b1", 12, 0))

		outcome := cricket.Resolve(state)
		assert.Equal(t, "Bharat", outcome.ManOfMatch)
	})

	t.Run("both fields are always set", func(t *testing.T) {
		state := buildState(t)
		cricket.Advance(state)

		outcome := cricket.Resolve(state)
		assert.Equal(t, cricket.ResultTie, outcome.Winner) // 0 - 0
		assert.NotEmpty(t, outcome.ManOfMatch)
	})
}
