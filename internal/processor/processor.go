package processor

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/cricket"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/pubsub"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/session"
)

// New creates a new Processor.
func New(sessions session.SessionStore, store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		sessions: sessions,
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// ProcessSessions fetches finalized scoring sessions and advances them
// through the state machine.
func (p *Processor) ProcessSessions(dryRun bool) {
	log.Info("Starting session processing...")
	sessions, err := p.sessions.ListForProcessing()
	if err != nil {
		log.Error("Failed to get sessions for processing", "error", err)
		return
	}

	if len(sessions) == 0 {
		log.Info("No sessions to process.")
		return
	}

	log.Info("Found sessions to process", "count", len(sessions))
	for _, sess := range sessions {
		startTime := time.Now()
		p.processSession(sess, dryRun)
		p.metrics.ObserveProcessingDuration(time.Since(startTime).Seconds())
	}
	log.Info("Session processing finished.")
}

func (p *Processor) processSession(sess *session.Session, dryRun bool) {
	log.Info("Processing session", "matchID", sess.MatchID, "initial_status", sess.Status)
	for {
		currentState := sess.Status
		log.Debug("Evaluating session state", "matchID", sess.MatchID, "status", currentState)

		switch currentState {
		case session.StatusScoring:
			// Still being scored; nothing to do until the engine finalizes it.
			log.Debug("Session is still scoring. Skipping.", "matchID", sess.MatchID)
			return

		case session.StatusFinalized:
			log.Info("Session is finalized. Persisting match record.", "matchID", sess.MatchID)
			record, rows := Flatten(sess.State)
			if !dryRun {
				if err := p.store.InsertMatchWithStats(record, rows); err != nil {
					log.Error("Failed to persist match", "error", err, "matchID", sess.MatchID)
					return
				}
			}
			p.metrics.IncMatchesCompleted()
			p.updateStatus(sess, session.StatusPersisted, dryRun)

		case session.StatusPersisted:
			log.Info("Match is persisted. Publishing stats update.", "matchID", sess.MatchID)
			if !dryRun {
				p.pubsub.SendMessage(pubsub.EventUpdatePlayerStats, sess.State)
			}
			p.updateStatus(sess, session.StatusStatsNotified, dryRun)

		case session.StatusStatsNotified:
			log.Info("Stats update published. Sending result notification.", "matchID", sess.MatchID)
			record, _ := Flatten(sess.State)
			if err := p.notifier.SendResultNotification(&record, dryRun); err != nil {
				log.Error("Failed to send result notification", "error", err, "matchID", sess.MatchID)
				return
			}
			p.updateStatus(sess, session.StatusResultNotified, dryRun)

		case session.StatusResultNotified:
			log.Info("Result has been notified. Marking session as done.", "matchID", sess.MatchID)
			p.updateStatus(sess, session.StatusDone, dryRun)

		case session.StatusDone:
			log.Debug("Session is done. Removing it.", "matchID", sess.MatchID)
			if !dryRun {
				if err := p.sessions.Delete(sess.MatchID); err != nil {
					log.Error("Failed to delete finished session", "error", err, "matchID", sess.MatchID)
				}
			}
			return // End of the line for this session

		default:
			log.Warn("Unknown processing status", "status", currentState, "matchID", sess.MatchID)
			return // Exit if status is unknown
		}

		// If the status hasn't changed, we're done with this session for now.
		if sess.Status == currentState {
			log.Debug("Session state did not change. Finished processing for now.", "matchID", sess.MatchID, "status", currentState)
			break
		}
	}
	log.Info("Finished processing session", "matchID", sess.MatchID, "final_status", sess.Status)
}

func (p *Processor) updateStatus(sess *session.Session, newStatus session.ProcessingStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update session status", "matchID", sess.MatchID, "from", sess.Status, "to", newStatus)
		sess.Status = newStatus // Update in-memory for the loop
		return
	}

	err := p.sessions.UpdateStatus(sess.MatchID, newStatus)
	if err != nil {
		log.Error("Failed to update processing status", "error", err, "matchID", sess.MatchID)
	} else {
		log.Debug("Successfully updated status", "matchID", sess.MatchID, "from", sess.Status, "to", newStatus)
		sess.Status = newStatus // Keep the in-memory object in sync
	}
}

// Flatten converts a completed match state into the persisted record and its
// per-player stat rows. The engine's match id carries over as the record id,
// so a retried pipeline run writes nothing new.
func Flatten(state *cricket.MatchState) (club.MatchRecord, []club.PlayerMatchStat) {
	record := club.MatchRecord{
		ID:           state.MatchID,
		ClubID:       state.Config.ClubID,
		TeamA:        state.Config.TeamA,
		TeamB:        state.Config.TeamB,
		Overs:        state.Config.Overs,
		TossWinner:   state.Config.TossWinner,
		TossDecision: string(state.Config.TossDecision),
		TeamAScore:   state.TeamAInnings.TotalRuns(),
		TeamAWickets: state.TeamAInnings.TotalWickets(),
		TeamBScore:   state.TeamBInnings.TotalRuns(),
		TeamBWickets: state.TeamBInnings.TotalWickets(),
		Winner:       state.Winner,
		ManOfMatch:   state.ManOfMatch,
		ManOfMatchID: state.ManOfMatchID,
		MatchDate:    state.MatchDate,
	}

	var rows []club.PlayerMatchStat
	for _, innings := range []*cricket.TeamInnings{&state.TeamAInnings, &state.TeamBInnings} {
		for _, entry := range innings.Entries {
			rows = append(rows, club.PlayerMatchStat{
				MatchID:  state.MatchID,
				PlayerID: entry.PlayerID,
				Team:     innings.Team,
				Runs:     entry.Runs,
				Wickets:  entry.Wickets,
				Ones:     entry.Boundaries.Ones,
				Twos:     entry.Boundaries.Twos,
				Threes:   entry.Boundaries.Threes,
				Fours:    entry.Boundaries.Fours,
				Sixes:    entry.Boundaries.Sixes,
			})
		}
	}

	return record, rows
}
