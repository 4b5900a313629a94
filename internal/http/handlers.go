package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to delete a specific match", "matchID", matchID)
			if err := s.Store.DeleteMatch(matchID); err != nil {
				log.Error("Failed to delete match", "error", err, "matchID", matchID)
				http.Error(w, "Failed to delete match", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Deleted match %s from store!", matchID)
			log.Info("Successfully deleted match from store", "matchID", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

// clubIDFromRequest resolves the club to operate on. The configured club is
// the default; a clubID query parameter overrides it.
func (s *Server) clubIDFromRequest(r *http.Request) string {
	if clubID := r.URL.Query().Get("clubID"); clubID != "" {
		return clubID
	}
	return s.Cfg.ClubID
}

// writeEngineError maps engine errors onto HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	var validationErr *cricket.ValidationError
	var unknownErr *cricket.UnknownPlayerError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &unknownErr):
		http.Error(w, unknownErr.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetAllPlayers(s.clubIDFromRequest(r))
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		player, err := s.Store.AddPlayer(s.clubIDFromRequest(r), req.Name)
		if err != nil {
			log.Error("Failed to add player", "error", err, "name", req.Name)
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Info("Added player", "playerID", player.ID, "name", player.Name)
		writeJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) RenamePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID string `json:"player_id"`
			NewName  string `json:"new_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PlayerID == "" || req.NewName == "" {
			http.Error(w, "player_id and new_name are required.", http.StatusBadRequest)
			return
		}

		if err := s.Store.RenamePlayer(req.PlayerID, req.NewName); err != nil {
			log.Error("Failed to rename player", "error", err, "playerID", req.PlayerID)
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Info("Renamed player", "playerID", req.PlayerID, "newName", req.NewName)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) RemovePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID string `json:"player_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PlayerID == "" {
			http.Error(w, "player_id is required.", http.StatusBadRequest)
			return
		}

		if err := s.Store.RemovePlayer(req.PlayerID); err != nil {
			log.Error("Failed to remove player", "error", err, "playerID", req.PlayerID)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Info("Removed player", "playerID", req.PlayerID)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches(s.clubIDFromRequest(r))
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) BuildMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg cricket.MatchConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if cfg.ClubID == "" {
			cfg.ClubID = s.Cfg.ClubID
		}

		state, err := cricket.Build(cfg)
		if err != nil {
			log.Warn("Rejected match config", "error", err)
			writeEngineError(w, err)
			return
		}

		if err := s.Sessions.Save(state); err != nil {
			log.Error("Failed to save scoring session", "error", err, "matchID", state.MatchID)
			http.Error(w, "Failed to save scoring session", http.StatusInternalServerError)
			return
		}

		log.Info("Built match", "matchID", state.MatchID, "teamA", cfg.TeamA, "teamB", cfg.TeamB)
		writeJSON(w, http.StatusCreated, state)
	}
}

// loadSession fetches the scoring session for the given match id and writes
// the HTTP error itself when it cannot.
func (s *Server) loadSession(w http.ResponseWriter, matchID string) (*cricket.MatchState, bool) {
	if matchID == "" {
		http.Error(w, "match_id is required.", http.StatusBadRequest)
		return nil, false
	}
	sess, err := s.Sessions.Load(matchID)
	if err != nil {
		log.Warn("Scoring session not found", "matchID", matchID, "error", err)
		http.Error(w, "Scoring session not found", http.StatusNotFound)
		return nil, false
	}
	return sess.State, true
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MatchID  string `json:"match_id"`
			PlayerID string `json:"player_id"`
			Runs     int    `json:"runs"`
			Wickets  int    `json:"wickets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		state, ok := s.loadSession(w, req.MatchID)
		if !ok {
			return
		}

		if err := cricket.UpdatePlayer(state, req.PlayerID, req.Runs, req.Wickets); err != nil {
			writeEngineError(w, err)
			return
		}

		if err := s.Sessions.Save(state); err != nil {
			log.Error("Failed to save scoring session", "error", err, "matchID", req.MatchID)
			http.Error(w, "Failed to save scoring session", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func (s *Server) UpdateBoundariesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MatchID    string             `json:"match_id"`
			PlayerID   string             `json:"player_id"`
			Boundaries cricket.Boundaries `json:"boundaries"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		state, ok := s.loadSession(w, req.MatchID)
		if !ok {
			return
		}

		if err := cricket.UpdateBoundaries(state, req.PlayerID, req.Boundaries); err != nil {
			writeEngineError(w, err)
			return
		}

		if err := s.Sessions.Save(state); err != nil {
			log.Error("Failed to save scoring session", "error", err, "matchID", req.MatchID)
			http.Error(w, "Failed to save scoring session", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func (s *Server) AdvanceInningsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MatchID string `json:"match_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		state, ok := s.loadSession(w, req.MatchID)
		if !ok {
			return
		}

		cricket.Advance(state)

		if err := s.Sessions.Save(state); err != nil {
			log.Error("Failed to save scoring session", "error", err, "matchID", req.MatchID)
			http.Error(w, "Failed to save scoring session", http.StatusInternalServerError)
			return
		}
		log.Info("Advanced match", "matchID", req.MatchID, "innings", state.InningsNumber, "completed", state.IsCompleted)
		writeJSON(w, http.StatusOK, state)
	}
}

func (s *Server) MatchStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := s.loadSession(w, r.URL.Query().Get("matchID"))
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func (s *Server) ProcessSessionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting session processing...")
		isDryRun := isDryRunFromContext(r)

		s.Processor.ProcessSessions(isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Session processing completed.")
		log.Info("Session processing finished.")
	}
}

// PlayerStatsHandler returns a player's career stats. With notify=true the
// career card is also posted to Slack, mirroring how the leaderboard is
// pushed; an unknown player then gets a not-found card instead of silence.
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "playerID is required.", http.StatusBadRequest)
			return
		}
		notify := r.URL.Query().Get("notify") == "true"
		isDryRun := isDryRunFromContext(r)

		career, err := s.Stats.PerPlayer(playerID)
		if err != nil {
			log.Warn("Could not aggregate player stats", "playerID", playerID, "error", err)
			if notify {
				if sendErr := s.Notifier.SendPlayerStats(nil, playerID, isDryRun); sendErr != nil {
					log.Error("Failed to send player stats card", "error", sendErr, "playerID", playerID)
				}
			}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		if notify {
			if err := s.Notifier.SendPlayerStats(career, playerID, isDryRun); err != nil {
				log.Error("Failed to send player stats card", "error", err, "playerID", playerID)
				http.Error(w, "Failed to send player stats", http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, http.StatusOK, career)
	}
}

func (s *Server) AllStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		careers, err := s.Stats.AllPlayers(s.clubIDFromRequest(r))
		if err != nil {
			http.Error(w, "Failed to aggregate stats", http.StatusInternalServerError)
			log.Error("Failed to aggregate stats", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, careers)
	}
}

func (s *Server) TopPerformersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metric := stats.Metric(r.URL.Query().Get("metric"))
		performers, err := s.Stats.TopPerformers(s.clubIDFromRequest(r), metric)
		if err != nil {
			log.Warn("Failed to get top performers", "metric", metric, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, performers)
	}
}

func (s *Server) UpdatePlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received update player stats message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		state := cricket.MatchState{}
		if err := s.pubsub.ProcessMessage(rawData, &state); err != nil {
			log.Error("Failed to decode match state", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		careers, err := s.Stats.AllPlayers(state.Config.ClubID)
		if err != nil {
			log.Error("Failed to aggregate stats for leaderboard", "error", err, "matchID", state.MatchID)
			http.Error(w, "Failed to aggregate stats", http.StatusInternalServerError)
			return
		}
		if err := s.Notifier.SendLeaderboard(careers, isDryRun); err != nil {
			log.Error("Failed to send leaderboard", "error", err, "matchID", state.MatchID)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
