package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/estatesandstands/estates-service/internal/utils"
)

// AccessLog writes one structured log line per request.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		utils.Logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  GetRequestID(r.Context()),
			"remote_addr": r.RemoteAddr,
		}).Info("request")
	})
}
