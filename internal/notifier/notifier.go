package notifier

import (
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed matches
	SendResultNotification(match *club.MatchRecord, dryRun bool) error
	// For leaderboard queries
	SendLeaderboard(careers []stats.PlayerCareerStats, dryRun bool) error
	SendPlayerStats(career *stats.PlayerCareerStats, query string, dryRun bool) error
}
