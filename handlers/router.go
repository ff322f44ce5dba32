package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires the endpoints:
//
//  1. GET /tasks - List all tasks
//  2. POST /tasks - Create a new task
//  3. PUT /tasks, PATCH /tasks - Update the status of a task
//  4. GET /health - Database health check
//  5. GET /metrics - Display Prometheus metrics
//
// Task endpoints are rate limited and counted.
func NewRouter(tasks *TaskHandler, health http.HandlerFunc, limiter *rate.Limiter, metrics *Metrics, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	route := func(pattern string, handlerFunc http.HandlerFunc) {
		mux.Handle(pattern, RateLimit(limiter, metrics, Instrument(metrics, handlerFunc)))
	}
	route("GET /tasks", tasks.List)
	route("POST /tasks", tasks.Create)
	route("PUT /tasks", tasks.Update)
	route("PATCH /tasks", tasks.Update)

	mux.Handle("GET /health", health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
