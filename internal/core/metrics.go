package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scout_searches_total",
		Help: "Discovery searches dispatched to the agent",
	})
	extractionFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scout_extraction_failures_total",
		Help: "Agent responses where no envelope source yielded events",
	})
	eventsDiscovered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scout_events_discovered_total",
		Help: "Events extracted from agent responses",
	})
)

func init() {
	prometheus.MustRegister(searchesTotal, extractionFailures, eventsDiscovered)
}
