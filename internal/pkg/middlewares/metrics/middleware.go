package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"ledger/internal/pkg/middlewares/auth"
	"ledger/pkg/logger"
)

const (
	callerSigned    = "signed"
	callerAnonymous = "anonymous"
	unmatchedRoute  = "unmatched"
)

// Middleware стоит до auth: адрес вызывающего еще не проверен,
// поэтому в метках только признак подписи.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)
			duration := time.Since(start)

			route := RouteTemplate(r)
			status := strconv.Itoa(rw.statusCode)
			caller := callerAnonymous
			if auth.Signed(r) {
				caller = callerSigned
			}

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status, caller).Inc()

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", rw.statusCode),
				logger.NewField("caller", caller),
				logger.NewField("bytes", rw.written),
				logger.NewField("duration", duration.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request failed")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

// RouteTemplate шаблон маршрута mux, чтобы id отправок не плодили серии.
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return template
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	written     int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
