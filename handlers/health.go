package handlers

import (
	"context"
	"net/http"
	"time"

	"TaskWebService/response"

	"github.com/sirupsen/logrus"
)

// HealthHandler reports whether the database answers a ping within two seconds.
func HealthHandler(ping func(ctx context.Context) error, log *logrus.Logger) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			log.WithField("request", requestName(req)).Error(err.Error())
			writeJSON(res, http.StatusServiceUnavailable, response.HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(res, http.StatusOK, response.HealthResponse{Status: "ok"})
	}
}
