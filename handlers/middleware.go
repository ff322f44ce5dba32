package handlers

import (
	"net/http"

	"TaskWebService/response"

	"golang.org/x/time/rate"
)

// RateLimit is a middleware that rejects requests with 429 Too Many Requests
// once limiter runs out of tokens.
func RateLimit(limiter *rate.Limiter, metrics *Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !limiter.Allow() {
			metrics.Errors.WithLabelValues(requestName(req)).Inc()
			writeJSON(res, http.StatusTooManyRequests, response.Message{
				Status: "Request Failed",
				Body:   "The API is at capacity, try again later.",
			})
			return
		}
		next.ServeHTTP(res, req)
	})
}

// Instrument counts every call to next in metrics.EndpointCalls.
func Instrument(metrics *Metrics, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		metrics.EndpointCalls.WithLabelValues(requestName(req)).Inc()
		next(res, req)
	})
}
