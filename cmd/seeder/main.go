package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	const clubID = "seed-club"
	if _, err := db.Exec("INSERT OR IGNORE INTO clubs (id, name) VALUES (?, ?)", clubID, "Seeder CC"); err != nil {
		log.Fatalf("Failed to insert seed club: %s", err)
	}

	// Create dummy players to use in matches, two per team.
	dummyPlayers := []cricket.RosterPlayer{
		{ID: "player-1", Name: "Seeder Player A"},
		{ID: "player-2", Name: "Seeder Player B"},
		{ID: "player-3", Name: "Seeder Player C"},
		{ID: "player-4", Name: "Seeder Player D"},
	}

	for _, p := range dummyPlayers {
		_, err := db.Exec("INSERT OR IGNORE INTO players (id, club_id, name) VALUES (?, ?, ?)", p.ID, clubID, p.Name)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", p.Name, err)
		}
	}
	log.Info("Ensured dummy players exist.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	matchValues := make([]string, 0, batchSize)
	matchArgs := make([]interface{}, 0, batchSize*15) // 15 columns per match
	statValues := make([]string, 0, batchSize*4)
	statArgs := make([]interface{}, 0, batchSize*4*7)

	for i := 0; i < numMatches; i++ {
		matchID := uuid.NewString()
		matchDate := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour).Format("2006-01-02")

		runsA1, runsA2 := rand.Intn(80), rand.Intn(80)
		runsB1, runsB2 := rand.Intn(80), rand.Intn(80)
		wicketsA, wicketsB := rand.Intn(2), rand.Intn(2)
		scoreA := runsA1 + runsA2
		scoreB := runsB1 + runsB2

		winner := cricket.ResultTie
		if scoreA > scoreB {
			winner = "Seeder Lions"
		} else if scoreB > scoreA {
			winner = "Seeder Tigers"
		}

		matchValues = append(matchValues, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		matchArgs = append(matchArgs,
			matchID,
			clubID,
			"Seeder Lions",
			"Seeder Tigers",
			20,
			"Seeder Lions",
			string(cricket.TossBat),
			scoreA,
			wicketsA,
			scoreB,
			wicketsB,
			winner,
			dummyPlayers[0].Name,
			dummyPlayers[0].ID,
			matchDate,
		)

		rows := []struct {
			playerID string
			team     string
			runs     int
			wickets  int
		}{
			{dummyPlayers[0].ID, "Seeder Lions", runsA1, wicketsA},
			{dummyPlayers[1].ID, "Seeder Lions", runsA2, 0},
			{dummyPlayers[2].ID, "Seeder Tigers", runsB1, wicketsB},
			{dummyPlayers[3].ID, "Seeder Tigers", runsB2, 0},
		}
		for _, row := range rows {
			statValues = append(statValues, "(?, ?, ?, ?, ?, ?, ?)")
			statArgs = append(statArgs, matchID, row.playerID, row.team, row.runs, row.wickets, row.runs/4, row.runs/12)
		}

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			matchStmt := fmt.Sprintf(`
				INSERT INTO matches (id, club_id, team_a, team_b, overs, toss_winner, toss_decision,
					team_a_score, team_a_wickets, team_b_score, team_b_wickets, winner,
					man_of_match, man_of_match_id, match_date)
				VALUES %s;`, strings.Join(matchValues, ","))

			if _, err := tx.Exec(matchStmt, matchArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute match batch insert: %s", err)
			}

			statStmt := fmt.Sprintf(`
				INSERT INTO match_player_stats (match_id, player_id, team, runs, wickets, fours, sixes)
				VALUES %s;`, strings.Join(statValues, ","))

			if _, err := tx.Exec(statStmt, statArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute stats batch insert: %s", err)
			}

			// Reset for the next batch
			matchValues = make([]string, 0, batchSize)
			matchArgs = make([]interface{}, 0, batchSize*15)
			statValues = make([]string, 0, batchSize*4)
			statArgs = make([]interface{}, 0, batchSize*4*7)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	// Leave one live scoring session behind so the pipeline has work to do.
	state, err := cricket.Build(cricket.MatchConfig{
		ClubID:       clubID,
		TeamA:        "Seeder Lions",
		TeamB:        "Seeder Tigers",
		TeamAPlayers: dummyPlayers[:2],
		TeamBPlayers: dummyPlayers[2:],
		Overs:        20,
		TossWinner:   "Seeder Lions",
		TossDecision: cricket.TossBat,
	})
	if err != nil {
		log.Fatalf("Failed to build seed match: %s", err)
	}
	blob, err := msgpack.Marshal(state)
	if err != nil {
		log.Fatalf("Failed to marshal seed session: %s", err)
	}
	_, err = db.Exec(`
		INSERT INTO match_sessions (match_id, club_id, processing_status, state_blob, updated_at)
		VALUES (?, ?, 'SCORING', ?, ?)`,
		state.MatchID, clubID, blob, time.Now().Unix())
	if err != nil {
		log.Fatalf("Failed to insert seed session: %s", err)
	}
	log.Info("Inserted a live scoring session.", "matchID", state.MatchID)

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
