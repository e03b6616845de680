package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to every request and emits one
// summary line per request, tagged with a request id. Handlers add their
// own fields and timings through GetLogData.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logData := NewLogData(log)
			logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			endTimer := logData.AddTiming("durationMs")
			next.ServeHTTP(w, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			logData.Log().Info("Request.Complete")
		})
	}
}
