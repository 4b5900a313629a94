package http

import (
	"net/http"

	"github.com/nitishb-dev/Cricket-Management-sub000/internal/club"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/config"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/notifier"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/processor"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/pubsub"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/session"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/stats"
)

func NewServer(store club.ClubStore, sessions session.SessionStore, aggregator *stats.Aggregator, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Sessions:       sessions,
		Stats:          aggregator,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/add", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/rename", Chain(s.RenamePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/remove", Chain(s.RemovePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/match/build", Chain(s.BuildMatchHandler(), paramsMiddleware))
	s.Router.Handle("/match/update-player", Chain(s.UpdatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/match/update-boundaries", Chain(s.UpdateBoundariesHandler(), paramsMiddleware))
	s.Router.Handle("/match/advance", Chain(s.AdvanceInningsHandler(), paramsMiddleware))
	s.Router.Handle("/match/state", Chain(s.MatchStateHandler(), paramsMiddleware))
	s.Router.Handle("/process", Chain(s.ProcessSessionsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/player", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/all", Chain(s.AllStatsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/top", Chain(s.TopPerformersHandler(), paramsMiddleware))
	s.Router.Handle("/update-player-stats", Chain(s.UpdatePlayerStatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
