package club

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	EnsureClub(clubID, name string) error

	AddPlayer(clubID, name string) (PlayerInfo, error)
	RenamePlayer(playerID, newName string) error
	RemovePlayer(playerID string) error
	GetPlayer(playerID string) (*PlayerInfo, error)
	GetAllPlayers(clubID string) ([]PlayerInfo, error)

	InsertMatchWithStats(match MatchRecord, rows []PlayerMatchStat) error
	GetMatch(matchID string) (*MatchRecord, error)
	GetAllMatches(clubID string) ([]MatchRecord, error)
	DeleteMatch(matchID string) error

	GetStatsForPlayer(playerID string) ([]PlayerMatchStat, error)
	GetStatsForMatch(matchID string) ([]PlayerMatchStat, error)
	GetStatsForClub(clubID string) ([]PlayerMatchStat, error)

	Clear()
}
