package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	EnsureClubFunc           func(clubID, name string) error
	AddPlayerFunc            func(clubID, name string) (PlayerInfo, error)
	RenamePlayerFunc         func(playerID, newName string) error
	RemovePlayerFunc         func(playerID string) error
	GetPlayerFunc            func(playerID string) (*PlayerInfo, error)
	GetAllPlayersFunc        func(clubID string) ([]PlayerInfo, error)
	InsertMatchWithStatsFunc func(match MatchRecord, rows []PlayerMatchStat) error
	GetMatchFunc             func(matchID string) (*MatchRecord, error)
	GetAllMatchesFunc        func(clubID string) ([]MatchRecord, error)
	DeleteMatchFunc          func(matchID string) error
	GetStatsForPlayerFunc    func(playerID string) ([]PlayerMatchStat, error)
	GetStatsForMatchFunc     func(matchID string) ([]PlayerMatchStat, error)
	GetStatsForClubFunc      func(clubID string) ([]PlayerMatchStat, error)
	ClearFunc                func()

	// Call records
	AddPlayerCalls    []struct{ ClubID, Name string }
	RenamePlayerCalls []struct{ PlayerID, NewName string }
	RemovePlayerCalls []string
	InsertMatchCalls  []struct {
		Match MatchRecord
		Rows  []PlayerMatchStat
	}
	DeleteMatchCalls []string
	ClearCalls       int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.RenamePlayerCalls = nil
	m.RemovePlayerCalls = nil
	m.InsertMatchCalls = nil
	m.DeleteMatchCalls = nil
	m.ClearCalls = 0
}

func (m *MockStore) EnsureClub(clubID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EnsureClubFunc != nil {
		return m.EnsureClubFunc(clubID, name)
	}
	return nil
}

func (m *MockStore) AddPlayer(clubID, name string) (PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, struct{ ClubID, Name string }{clubID, name})
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(clubID, name)
	}
	return PlayerInfo{ID: "mock-id", ClubID: clubID, Name: name}, nil
}

func (m *MockStore) RenamePlayer(playerID, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RenamePlayerCalls = append(m.RenamePlayerCalls, struct{ PlayerID, NewName string }{playerID, newName})
	if m.RenamePlayerFunc != nil {
		return m.RenamePlayerFunc(playerID, newName)
	}
	return nil
}

func (m *MockStore) RemovePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovePlayerCalls = append(m.RemovePlayerCalls, playerID)
	if m.RemovePlayerFunc != nil {
		return m.RemovePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return &PlayerInfo{ID: playerID}, nil
}

func (m *MockStore) GetAllPlayers(clubID string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) InsertMatchWithStats(match MatchRecord, rows []PlayerMatchStat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = append(m.InsertMatchCalls, struct {
		Match MatchRecord
		Rows  []PlayerMatchStat
	}{match, rows})
	if m.InsertMatchWithStatsFunc != nil {
		return m.InsertMatchWithStatsFunc(match, rows)
	}
	return nil
}

func (m *MockStore) GetMatch(matchID string) (*MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return &MatchRecord{ID: matchID}, nil
}

func (m *MockStore) GetAllMatches(clubID string) ([]MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) DeleteMatch(matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, matchID)
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(matchID)
	}
	return nil
}

func (m *MockStore) GetStatsForPlayer(playerID string) ([]PlayerMatchStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsForPlayerFunc != nil {
		return m.GetStatsForPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) GetStatsForMatch(matchID string) ([]PlayerMatchStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsForMatchFunc != nil {
		return m.GetStatsForMatchFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) GetStatsForClub(clubID string) ([]PlayerMatchStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetStatsForClubFunc != nil {
		return m.GetStatsForClubFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

var _ ClubStore = (*MockStore)(nil)
