package cricket

import "fmt"

// ValidationError reports a malformed MatchConfig. It is always recoverable:
// nothing has been mutated when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid match config: %s: %s", e.Field, e.Reason)
}

// UnknownPlayerError reports a stat update for a player who is not part of
// the currently batting roster.
type UnknownPlayerError struct {
	PlayerID string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player %q is not in the batting team's roster", e.PlayerID)
}
