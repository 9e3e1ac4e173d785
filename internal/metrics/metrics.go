package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts the league events worth graphing. Services depend on this
// interface so tests can pass a Mock instead of touching a real registry.
type Recorder interface {
	IncRegistrations()
	IncLogins()
	IncMatchesReported()
	IncMatchesDeleted()
}

var _ Recorder = (*Service)(nil)

type Service struct {
	Registrations   prometheus.Counter
	Logins          prometheus.Counter
	MatchesReported prometheus.Counter
	MatchesDeleted  prometheus.Counter
}

// Handler returns the scrape endpoint for the given gatherer, defaulting to
// the process-wide one.
func Handler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus counters. If no registerer
// is provided it uses the default one.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_registrations_total",
			Help: "The total number of accounts registered.",
		}),
		Logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_logins_total",
			Help: "The total number of successful logins.",
		}),
		MatchesReported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_matches_reported_total",
			Help: "The total number of match results recorded.",
		}),
		MatchesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tennis_matches_deleted_total",
			Help: "The total number of match results deleted from the history.",
		}),
	}

	reg.MustRegister(
		s.Registrations,
		s.Logins,
		s.MatchesReported,
		s.MatchesDeleted,
	)

	return s
}

func (s *Service) IncRegistrations() {
	s.Registrations.Inc()
}

func (s *Service) IncLogins() {
	s.Logins.Inc()
}

func (s *Service) IncMatchesReported() {
	s.MatchesReported.Inc()
}

func (s *Service) IncMatchesDeleted() {
	s.MatchesDeleted.Inc()
}
