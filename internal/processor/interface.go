package processor

import (
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	InsertMatchWithStats(match club.MatchRecord, rows []club.PlayerMatchStat) error
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
