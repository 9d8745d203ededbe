package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/belimawr/team-logos/resolver"
)

// Prometheus records logo lookups as Prometheus counters.
type Prometheus struct {
	lookupsTotal        *prometheus.CounterVec
	remoteRequestsTotal *prometheus.CounterVec
}

// NewPrometheus registers the logo counters on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	lookupsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "team_logos_lookups_total",
		Help: "Total logo lookups by the source that served them",
	}, []string{"source"})

	remoteRequestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "team_logos_remote_requests_total",
		Help: "Total team search requests by result",
	}, []string{"result"})

	reg.MustRegister(lookupsTotal, remoteRequestsTotal)

	return &Prometheus{
		lookupsTotal:        lookupsTotal,
		remoteRequestsTotal: remoteRequestsTotal,
	}
}

// RecordLookup counts a lookup served from source.
func (p *Prometheus) RecordLookup(source string) {
	p.lookupsTotal.WithLabelValues(source).Inc()
}

// RecordRemoteRequest counts a team search with its result.
func (p *Prometheus) RecordRemoteRequest(result string) {
	p.remoteRequestsTotal.WithLabelValues(result).Inc()
}

var _ resolver.Recorder = (*Prometheus)(nil)
