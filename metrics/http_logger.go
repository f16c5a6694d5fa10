package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// HTTPLogger logs HTTP requests and collects request related metrics
type HTTPLogger struct {
	Handler         http.Handler
	RequestDuration prometheus.Observer
	Log             *zap.Logger
}

func (l HTTPLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	l.Handler.ServeHTTP(recorder, r)

	duration := time.Since(start)
	l.RequestDuration.Observe(float64(duration) / float64(time.Millisecond))
	l.Log.Debug("Request handled.",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", recorder.status),
		zap.Duration("duration", duration))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
