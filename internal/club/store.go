package club

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

func (s *store) EnsureClub(clubID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO clubs (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`, clubID, name)
	if err != nil {
		log.Error("Failed to upsert club", "error", err, "clubID", clubID)
	}
	return err
}

func (s *store) AddPlayer(clubID, name string) (PlayerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := PlayerInfo{ID: uuid.NewString(), ClubID: clubID, Name: name}
	_, err := s.db.Exec("INSERT INTO players (id, club_id, name) VALUES (?, ?, ?)", player.ID, clubID, name)
	if err != nil {
		log.Error("Failed to add player", "error", err, "clubID", clubID, "name", name)
		return PlayerInfo{}, fmt.Errorf("failed to add player %q: %w", name, err)
	}
	log.Info("Added new player", "playerID", player.ID, "name", name, "clubID", clubID)
	return player, nil
}

func (s *store) RenamePlayer(playerID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET name = ? WHERE id = ?", newName, playerID)
	if err != nil {
		log.Error("Failed to rename player", "error", err, "playerID", playerID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %q not found", playerID)
	}
	return nil
}

// RemovePlayer deletes a player. Their match participation rows go with them
// (ON DELETE CASCADE); persisted match records stay.
func (s *store) RemovePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		log.Error("Failed to remove player", "error", err, "playerID", playerID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %q not found", playerID)
	}
	log.Info("Removed player and cascaded stat rows", "playerID", playerID)
	return nil
}

func (s *store) GetPlayer(playerID string) (*PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p PlayerInfo
	err := s.db.QueryRow("SELECT id, club_id, name, created_at FROM players WHERE id = ?", playerID).
		Scan(&p.ID, &p.ClubID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("player %q not found", playerID)
		}
		log.Error("Failed to query player", "error", err, "playerID", playerID)
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &p, nil
}

func (s *store) GetAllPlayers(clubID string) ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, club_id, name, created_at FROM players WHERE club_id = ? ORDER BY name", clubID)
	if err != nil {
		log.Error("Failed to query all players", "error", err, "clubID", clubID)
		return nil, err
	}
	defer rows.Close()

	var players []PlayerInfo
	for rows.Next() {
		var p PlayerInfo
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Name, &p.CreatedAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// InsertMatchWithStats writes a completed match and its per-player rows in a
// single transaction: either everything commits or nothing does. The match id
// is the idempotency key, so re-submitting an already persisted match is a
// no-op rather than a duplicate. Rows whose runs/wickets do not reconcile
// with the team scores are rejected before anything is written.
func (s *store) InsertMatchWithStats(match MatchRecord, statRows []PlayerMatchStat) error {
	if err := reconcile(match, statRows); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM matches WHERE id = ?)", match.ID).Scan(&exists); err != nil {
		tx.Rollback()
		return err
	}
	if exists {
		tx.Rollback()
		log.Info("Match already persisted, skipping", "matchID", match.ID)
		return nil
	}

	_, err = tx.Exec(`
		INSERT INTO matches (id, club_id, team_a, team_b, overs, toss_winner, toss_decision,
			team_a_score, team_a_wickets, team_b_score, team_b_wickets,
			winner, man_of_match, man_of_match_id, match_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, match.ID, match.ClubID, match.TeamA, match.TeamB, match.Overs, match.TossWinner, match.TossDecision,
		match.TeamAScore, match.TeamAWickets, match.TeamBScore, match.TeamBWickets,
		match.Winner, match.ManOfMatch, match.ManOfMatchID, match.MatchDate)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO match_player_stats (match_id, player_id, team, runs, wickets, ones, twos, threes, fours, sixes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range statRows {
		_, err = stmt.Exec(match.ID, row.PlayerID, row.Team, row.Runs, row.Wickets,
			row.Ones, row.Twos, row.Threes, row.Fours, row.Sixes)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert stat row for player %s: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Persisted completed match", "matchID", match.ID, "statRows", len(statRows))
	return nil
}

// reconcile checks that per-team row sums equal the match scores.
func reconcile(match MatchRecord, statRows []PlayerMatchStat) error {
	var runsA, wktsA, runsB, wktsB int
	for _, row := range statRows {
		switch row.Team {
		case match.TeamA:
			runsA += row.Runs
			wktsA += row.Wickets
		case match.TeamB:
			runsB += row.Runs
			wktsB += row.Wickets
		default:
			return fmt.Errorf("stat row for player %s names team %q, which is not part of match %s", row.PlayerID, row.Team, match.ID)
		}
	}
	if runsA != match.TeamAScore || wktsA != match.TeamAWickets {
		return fmt.Errorf("team %q rows sum to %d/%d but the match records %d/%d", match.TeamA, runsA, wktsA, match.TeamAScore, match.TeamAWickets)
	}
	if runsB != match.TeamBScore || wktsB != match.TeamBWickets {
		return fmt.Errorf("team %q rows sum to %d/%d but the match records %d/%d", match.TeamB, runsB, wktsB, match.TeamBScore, match.TeamBWickets)
	}
	return nil
}

func (s *store) GetMatch(matchID string) (*MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, club_id, team_a, team_b, overs, toss_winner, toss_decision,
			team_a_score, team_a_wickets, team_b_score, team_b_wickets,
			winner, man_of_match, COALESCE(man_of_match_id, ''), match_date
		FROM matches WHERE id = ?
	`, matchID)

	match, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("match %q not found", matchID)
		}
		log.Error("Failed to query match", "error", err, "matchID", matchID)
		return nil, fmt.Errorf("database error: %w", err)
	}
	return match, nil
}

func (s *store) GetAllMatches(clubID string) ([]MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, club_id, team_a, team_b, overs, toss_winner, toss_decision,
			team_a_score, team_a_wickets, team_b_score, team_b_wickets,
			winner, man_of_match, COALESCE(man_of_match_id, ''), match_date
		FROM matches WHERE club_id = ? ORDER BY match_date DESC, id
	`, clubID)
	if err != nil {
		log.Error("Failed to query all matches", "error", err, "clubID", clubID)
		return nil, err
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func scanMatch(scanner interface{ Scan(...any) error }) (*MatchRecord, error) {
	var m MatchRecord
	err := scanner.Scan(
		&m.ID, &m.ClubID, &m.TeamA, &m.TeamB, &m.Overs, &m.TossWinner, &m.TossDecision,
		&m.TeamAScore, &m.TeamAWickets, &m.TeamBScore, &m.TeamBWickets,
		&m.Winner, &m.ManOfMatch, &m.ManOfMatchID, &m.MatchDate,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMatch removes a match and, via the cascade, its stat rows.
func (s *store) DeleteMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		log.Error("Failed to delete match", "error", err, "matchID", matchID)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("match %q not found", matchID)
	}
	return nil
}

const statJoinQuery = `
	SELECT mps.match_id, mps.player_id, mps.team, mps.runs, mps.wickets,
		mps.ones, mps.twos, mps.threes, mps.fours, mps.sixes,
		p.name, m.team_a, m.team_b, m.winner, m.man_of_match, m.match_date
	FROM match_player_stats mps
	JOIN matches m ON mps.match_id = m.id
	JOIN players p ON mps.player_id = p.id
`

func (s *store) GetStatsForPlayer(playerID string) ([]PlayerMatchStat, error) {
	return s.queryStats(statJoinQuery+" WHERE mps.player_id = ? ORDER BY m.match_date, mps.match_id", playerID)
}

func (s *store) GetStatsForMatch(matchID string) ([]PlayerMatchStat, error) {
	return s.queryStats(statJoinQuery+" WHERE mps.match_id = ? ORDER BY mps.team, mps.player_id", matchID)
}

func (s *store) GetStatsForClub(clubID string) ([]PlayerMatchStat, error) {
	return s.queryStats(statJoinQuery+" WHERE m.club_id = ? ORDER BY m.match_date, mps.match_id, mps.player_id", clubID)
}

func (s *store) queryStats(query string, arg string) ([]PlayerMatchStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, arg)
	if err != nil {
		log.Error("Failed to query stat rows", "error", err)
		return nil, err
	}
	defer rows.Close()

	var stats []PlayerMatchStat
	for rows.Next() {
		var st PlayerMatchStat
		err := rows.Scan(
			&st.MatchID, &st.PlayerID, &st.Team, &st.Runs, &st.Wickets,
			&st.Ones, &st.Twos, &st.Threes, &st.Fours, &st.Sixes,
			&st.PlayerName, &st.TeamA, &st.TeamB, &st.Winner, &st.ManOfMatch, &st.MatchDate,
		)
		if err != nil {
			log.Error("Failed to scan stat row", "error", err)
			continue
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"match_player_stats", "match_sessions", "matches", "players", "clubs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
