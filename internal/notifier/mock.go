package notifier

import (
	"sync"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendResultNotificationFunc func(match *club.MatchRecord, dryRun bool) error
	SendLeaderboardFunc        func(careers []stats.PlayerCareerStats, dryRun bool) error
	SendPlayerStatsFunc        func(career *stats.PlayerCareerStats, query string, dryRun bool) error

	// Call records
	SendResultNotificationCalls []struct{ Match *club.MatchRecord }
	SendLeaderboardCalls        [][]stats.PlayerCareerStats
	SendPlayerStatsCalls        []struct {
		Career *stats.PlayerCareerStats
		Query  string
	}
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendPlayerStatsCalls = nil
}

func (m *Mock) SendResultNotification(match *club.MatchRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct{ Match *club.MatchRecord }{match})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(careers []stats.PlayerCareerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, careers)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(careers, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerStats(career *stats.PlayerCareerStats, query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Career *stats.PlayerCareerStats
		Query  string
	}{career, query})
	if m.SendPlayerStatsFunc != nil {
		return m.SendPlayerStatsFunc(career, query, dryRun)
	}
	return nil
}
