package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ResponseWriter records what a handler sent: status, body size and whether
// the response turned out to be an event stream
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	size    int
	started bool
	stream  bool
}

// NewResponseWriter wraps w, reusing it when it is already a ResponseWriter
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *ResponseWriter) begin(status int) {
	if rw.started {
		return
	}
	rw.started = true
	rw.status = status
	rw.stream = strings.HasPrefix(rw.Header().Get("Content-Type"), "text/event-stream")
}

// WriteHeader captures the status code
func (rw *ResponseWriter) WriteHeader(status int) {
	rw.begin(status)
	rw.ResponseWriter.WriteHeader(status)
}

// Write captures the response size
func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.begin(http.StatusOK)
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// Status returns the captured status code
func (rw *ResponseWriter) Status() int {
	return rw.status
}

// Size returns the captured response size
func (rw *ResponseWriter) Size() int {
	return rw.size
}

// Started reports whether headers have gone out
func (rw *ResponseWriter) Started() bool {
	return rw.started
}

// Stream reports whether the response is a server-sent event stream
func (rw *ResponseWriter) Stream() bool {
	return rw.stream
}

// Flush implements http.Flusher for SSE support
func (rw *ResponseWriter) Flush() {
	rw.begin(http.StatusOK)
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController
func (rw *ResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logging logs one line per request. Event streams live until the client
// leaves, so their close is logged at debug rather than as a slow request.
// Server errors are logged at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := NewResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.status),
				slog.Int("size", wrapped.size),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case wrapped.stream:
				logger.LogAttrs(r.Context(), slog.LevelDebug, "event stream closed", attrs...)
			case wrapped.status >= http.StatusInternalServerError:
				logger.LogAttrs(r.Context(), slog.LevelWarn, "http request failed", attrs...)
			default:
				logger.LogAttrs(r.Context(), slog.LevelInfo, "http request", attrs...)
			}
		})
	}
}
