package cricket

import (
	"time"

	"github.com/google/uuid"
)

// Build validates a MatchConfig and turns it into an initialized MatchState:
// innings 1, every roster player zeroed, nothing completed. It is a pure
// constructor with no side effects beyond generating the match id.
func Build(cfg MatchConfig) (*MatchState, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	state := &MatchState{
		MatchID:       uuid.NewString(),
		Config:        cfg,
		InningsNumber: 1,
		TeamAInnings:  zeroedInnings(cfg.TeamA, cfg.TeamAPlayers),
		TeamBInnings:  zeroedInnings(cfg.TeamB, cfg.TeamBPlayers),
		MatchDate:     time.Now().UTC().Format("2006-01-02"),
	}
	return state, nil
}

func zeroedInnings(team string, roster []RosterPlayer) TeamInnings {
	entries := make([]PlayerEntry, len(roster))
	for i, p := range roster {
		entries[i] = PlayerEntry{PlayerID: p.ID, Name: p.Name}
	}
	return TeamInnings{Team: team, Entries: entries}
}

func validateConfig(cfg MatchConfig) error {
	if cfg.TeamA == "" {
		return &ValidationError{Field: "team_a", Reason: "team name must not be empty"}
	}
	if cfg.TeamB == "" {
		return &ValidationError{Field: "team_b", Reason: "team name must not be empty"}
	}
	if cfg.TeamA == cfg.TeamB {
		return &ValidationError{Field: "team_b", Reason: "team names must differ"}
	}
	if len(cfg.TeamAPlayers) == 0 {
		return &ValidationError{Field: "team_a_players", Reason: "roster must not be empty"}
	}
	if len(cfg.TeamBPlayers) == 0 {
		return &ValidationError{Field: "team_b_players", Reason: "roster must not be empty"}
	}
	if cfg.Overs <= 0 {
		return &ValidationError{Field: "overs", Reason: "overs must be a positive integer"}
	}
	if cfg.TossWinner != cfg.TeamA && cfg.TossWinner != cfg.TeamB {
		return &ValidationError{Field: "toss_winner", Reason: "toss winner must be one of the two teams"}
	}
	if cfg.TossDecision != TossBat && cfg.TossDecision != TossBowl {
		return &ValidationError{Field: "toss_decision", Reason: `toss decision must be "bat" or "bowl"`}
	}

	seenA := make(map[string]bool, len(cfg.TeamAPlayers))
	for _, p := range cfg.TeamAPlayers {
		if p.ID == "" {
			return &ValidationError{Field: "team_a_players", Reason: "player id must not be empty"}
		}
		if seenA[p.ID] {
			return &ValidationError{Field: "team_a_players", Reason: "player " + p.ID + " selected twice"}
		}
		seenA[p.ID] = true
	}
	seenB := make(map[string]bool, len(cfg.TeamBPlayers))
	for _, p := range cfg.TeamBPlayers {
		if p.ID == "" {
			return &ValidationError{Field: "team_b_players", Reason: "player id must not be empty"}
		}
		if seenB[p.ID] {
			return &ValidationError{Field: "team_b_players", Reason: "player " + p.ID + " selected twice"}
		}
		if seenA[p.ID] {
			return &ValidationError{Field: "team_b_players", Reason: "player " + p.ID + " appears in both teams"}
		}
		seenB[p.ID] = true
	}
	return nil
}
