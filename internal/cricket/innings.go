package cricket

import "github.com/charmbracelet/log"

// ballsPerOver is fixed; the "balls faced" figure is approximated as
// runs+wickets rather than tracked per delivery.
const ballsPerOver = 6

// UpdatePlayer sets the run/wicket counters for one player of the currently
// batting team. Negative inputs are clamped to zero. Once the match is
// completed the state is terminal and updates are ignored.
//
// During innings 2 the update auto-completes the match the moment the chase
// reaches the target, so a completed match is stamped exactly once even if
// the operator never presses "advance".
func UpdatePlayer(state *MatchState, playerID string, runs, wickets int) error {
	if state.IsCompleted {
		log.Debug("Ignoring update on completed match", "matchID", state.MatchID, "playerID", playerID)
		return nil
	}
	if runs < 0 {
		runs = 0
	}
	if wickets < 0 {
		wickets = 0
	}

	batting := state.BattingTeam()
	idx := -1
	for i := range batting.Entries {
		if batting.Entries[i].PlayerID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &UnknownPlayerError{PlayerID: playerID}
	}

	batting.Entries[idx].Runs = runs
	batting.Entries[idx].Wickets = wickets

	if state.InningsNumber == 2 && batting.TotalRuns() >= state.Target() {
		log.Info("Target reached, completing match", "matchID", state.MatchID, "target", state.Target())
		complete(state)
	}
	return nil
}

// UpdateBoundaries records the optional scoring breakdown for one player of
// the currently batting team. It never transitions innings.
func UpdateBoundaries(state *MatchState, playerID string, b Boundaries) error {
	if state.IsCompleted {
		return nil
	}
	batting := state.BattingTeam()
	for i := range batting.Entries {
		if batting.Entries[i].PlayerID == playerID {
			batting.Entries[i].Boundaries = b
			return nil
		}
	}
	return &UnknownPlayerError{PlayerID: playerID}
}

// InningsComplete reports whether the current innings is over: all out (the
// last player cannot bat alone), balls exhausted, or - in the second innings
// only - the target reached.
func InningsComplete(state *MatchState) bool {
	if state.IsCompleted {
		return true
	}
	batting := state.BattingTeam()
	if batting.TotalWickets() >= len(batting.Entries)-1 {
		return true
	}
	ballsFaced := batting.TotalRuns() + batting.TotalWickets()
	if ballsFaced >= state.Config.Overs*ballsPerOver {
		return true
	}
	if state.InningsNumber == 2 && batting.TotalRuns() >= state.Target() {
		return true
	}
	return false
}

// Advance moves the match forward: innings 1 rolls over to innings 2, and
// closing innings 2 resolves the outcome and marks the match completed.
// Advancing before InningsComplete is permitted; the caller decides policy.
// Advancing a completed match does nothing.
func Advance(state *MatchState) {
	if state.IsCompleted {
		return
	}
	if state.InningsNumber == 1 {
		state.InningsNumber = 2
		log.Debug("Advanced to second innings", "matchID", state.MatchID, "target", state.Target())
		return
	}
	complete(state)
}

func complete(state *MatchState) {
	outcome := Resolve(state)
	state.Winner = outcome.Winner
	state.ManOfMatch = outcome.ManOfMatch
	state.ManOfMatchID = outcome.ManOfMatchID
	state.IsCompleted = true
	log.Info("Match completed", "matchID", state.MatchID, "winner", state.Winner, "manOfMatch", state.ManOfMatch)
}
