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

type Server struct {
	Store          club.ClubStore
	Sessions       session.SessionStore
	Stats          *stats.Aggregator
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
