package cricket

// TossDecision is what the toss winner elected to do.
type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

// ResultTie is the winner value recorded when both teams finish on the same score.
const ResultTie = "Tie"

// RosterPlayer identifies one selectable player from a club roster.
type RosterPlayer struct {
	ID   string `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

// MatchConfig is the immutable setup for a match: two named teams, their
// selected rosters, the innings length and the toss.
type MatchConfig struct {
	ClubID       string         `json:"club_id" msgpack:"club_id"`
	TeamA        string         `json:"team_a" msgpack:"team_a"`
	TeamB        string         `json:"team_b" msgpack:"team_b"`
	TeamAPlayers []RosterPlayer `json:"team_a_players" msgpack:"team_a_players"`
	TeamBPlayers []RosterPlayer `json:"team_b_players" msgpack:"team_b_players"`
	Overs        int            `json:"overs" msgpack:"overs"`
	TossWinner   string         `json:"toss_winner" msgpack:"toss_winner"`
	TossDecision TossDecision   `json:"toss_decision" msgpack:"toss_decision"`
}

// Boundaries is the optional per-player scoring breakdown.
type Boundaries struct {
	Ones   int `json:"ones" msgpack:"ones"`
	Twos   int `json:"twos" msgpack:"twos"`
	Threes int `json:"threes" msgpack:"threes"`
	Fours  int `json:"fours" msgpack:"fours"`
	Sixes  int `json:"sixes" msgpack:"sixes"`
}

// PlayerEntry is one player's line in a team innings. Runs and wickets are
// free-form operator-entered totals, not derived from deliveries.
type PlayerEntry struct {
	PlayerID   string     `json:"player_id" msgpack:"player_id"`
	Name       string     `json:"name" msgpack:"name"`
	Runs       int        `json:"runs" msgpack:"runs"`
	Wickets    int        `json:"wickets" msgpack:"wickets"`
	Boundaries Boundaries `json:"boundaries" msgpack:"boundaries"`
}

// TeamInnings is one team's batting record for one innings. The entry order
// is the roster order from the MatchConfig and stays stable for the whole
// match; the man-of-the-match tie-break depends on it.
type TeamInnings struct {
	Team    string        `json:"team" msgpack:"team"`
	Entries []PlayerEntry `json:"entries" msgpack:"entries"`
}

// TotalRuns sums the runs of every entry.
func (ti *TeamInnings) TotalRuns() int {
	total := 0
	for _, e := range ti.Entries {
		total += e.Runs
	}
	return total
}

// TotalWickets sums the wickets of every entry.
func (ti *TeamInnings) TotalWickets() int {
	total := 0
	for _, e := range ti.Entries {
		total += e.Wickets
	}
	return total
}

// MatchState is the mutable aggregate while a match is being scored. The
// MatchID is generated at build time and doubles as the idempotency key for
// the eventual persisted record.
type MatchState struct {
	MatchID       string      `json:"match_id" msgpack:"match_id"`
	Config        MatchConfig `json:"config" msgpack:"config"`
	InningsNumber int         `json:"innings_number" msgpack:"innings_number"`
	TeamAInnings  TeamInnings `json:"team_a_innings" msgpack:"team_a_innings"`
	TeamBInnings  TeamInnings `json:"team_b_innings" msgpack:"team_b_innings"`
	IsCompleted   bool        `json:"is_completed" msgpack:"is_completed"`
	Winner        string      `json:"winner" msgpack:"winner"`
	ManOfMatch    string      `json:"man_of_match" msgpack:"man_of_match"`
	ManOfMatchID  string      `json:"man_of_match_id" msgpack:"man_of_match_id"`
	MatchDate     string      `json:"match_date" msgpack:"match_date"`
}

// BattingTeam returns the innings currently at bat. Whoever won the toss and
// chose to bat (or whose opponent chose to bowl) takes the first innings.
func (s *MatchState) BattingTeam() *TeamInnings {
	if s.firstBattingIsTeamA() == (s.InningsNumber == 1) {
		return &s.TeamAInnings
	}
	return &s.TeamBInnings
}

// FirstInnings returns the innings batted first.
func (s *MatchState) FirstInnings() *TeamInnings {
	if s.firstBattingIsTeamA() {
		return &s.TeamAInnings
	}
	return &s.TeamBInnings
}

func (s *MatchState) firstBattingIsTeamA() bool {
	tossWonByA := s.Config.TossWinner == s.Config.TeamA
	if s.Config.TossDecision == TossBat {
		return tossWonByA
	}
	return !tossWonByA
}

// Target is the score the side batting second must reach to win. It is only
// meaningful from innings 2 onward.
func (s *MatchState) Target() int {
	return s.FirstInnings().TotalRuns() + 1
}

// Outcome is what the resolver stamps onto a completed match.
type Outcome struct {
	Winner       string `json:"winner"`
	ManOfMatch   string `json:"man_of_match"`
	ManOfMatchID string `json:"man_of_match_id"`
}
