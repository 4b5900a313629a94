package metrics

import "sync"

// MockMetrics is a no-op implementation of the Metrics interface that records
// calls for testing.
type MockMetrics struct {
	mu sync.Mutex

	MatchesCompletedCalls    int
	StatsQueriesCalls        int
	AggregationDurationCalls []float64
	ProcessingDurationCalls  []float64
	NotifSentCalls           int
	NotifFailedCalls         int
	StartupTimeCalls         []float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncMatchesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesCompletedCalls++
}

func (m *MockMetrics) IncStatsQueries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsQueriesCalls++
}

func (m *MockMetrics) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AggregationDurationCalls = append(m.AggregationDurationCalls, duration)
}

func (m *MockMetrics) ObserveProcessingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingDurationCalls = append(m.ProcessingDurationCalls, duration)
}

func (m *MockMetrics) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCalls++
}

func (m *MockMetrics) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCalls++
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimeCalls = append(m.StartupTimeCalls, duration)
}
