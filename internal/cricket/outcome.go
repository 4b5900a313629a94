package cricket

// Resolve computes the winner and the man of the match once both innings are
// closed. It never mutates the state; the caller stamps the returned values.
//
// The winner is the team with strictly more total runs; equal totals yield
// ResultTie. The man of the match is the player with the highest combined
// runs+wickets across both teams; ties go to the first player encountered,
// team A entries before team B entries, in roster order.
func Resolve(state *MatchState) Outcome {
	var outcome Outcome

	runsA := state.TeamAInnings.TotalRuns()
	runsB := state.TeamBInnings.TotalRuns()
	switch {
	case runsA > runsB:
		outcome.Winner = state.Config.TeamA
	case runsB > runsA:
		outcome.Winner = state.Config.TeamB
	default:
		outcome.Winner = ResultTie
	}

	best := -1
	for _, innings := range []*TeamInnings{&state.TeamAInnings, &state.TeamBInnings} {
		for _, e := range innings.Entries {
			if combined := e.Runs + e.Wickets; combined > best {
				best = combined
				outcome.ManOfMatch = e.Name
				outcome.ManOfMatchID = e.PlayerID
			}
		}
	}
	return outcome
}
