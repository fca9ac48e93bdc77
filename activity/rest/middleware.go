package rest

import (
	"bytes"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/activitylog/api/pkg/logger"
	"github.com/rs/xid"
)

func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = xid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		responseWriter := NewResponseWriter(w)
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				if responseWriter.statusCode == 0 {
					http.Error(responseWriter, "Internal Server Error", http.StatusInternalServerError)
				}
			}
		}()

		ctx = log.WithContext(ctx)
		r = r.WithContext(ctx)
		next.ServeHTTP(responseWriter, r)
		status := responseWriter.Status()
		log = log.With().
			Int("cost_msec", int(time.Since(start).Milliseconds())).
			Int("status_code", status).
			Logger()
		switch {
		case status >= 500:
			log.Error().
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with server error")
		case status >= 400:
			log.Warn().
				Str("response_body", responseWriter.responseBody.String()).
				Msg("Request completed with client error")
		default:
			log.Info().Msg("Request completed successfully")
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	responseBody bytes.Buffer
	statusCode   int
}

func NewResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	rw.responseBody.Write(b)
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Status() int {
	if rw.statusCode == 0 {
		return http.StatusOK
	}
	return rw.statusCode
}

// clientIP returns the first X-Forwarded-For hop, or the peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
