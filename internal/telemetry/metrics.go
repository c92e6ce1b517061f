package telemetry

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsForwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_events_forwarded_total",
		Help: "Conversion events successfully forwarded to the upstream API.",
	})

	EventsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_events_rejected_total",
		Help: "Relay requests rejected before forwarding, by reason.",
	}, []string{"reason"})

	UpstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_upstream_failures_total",
		Help: "Forward attempts that failed at the upstream API.",
	})
)

// Serve exposes /metrics on its own listener so scraping stays off the
// relay's public port.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics listener stopped: %v", err)
		}
	}()
}
