package processor

import (
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/metrics"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/pubsub"
	"github.com/nitishb-dev/Cricket-Management-sub000/internal/session"
)

// Processor handles the business logic of moving finalized scoring sessions
// through the completion pipeline.
type Processor struct {
	sessions session.SessionStore
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}
