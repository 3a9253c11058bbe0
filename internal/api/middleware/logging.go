package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Only a prefix of the body is logged; the handler still sees all of it.
const maxLoggedBody = 4 << 10

type replayBody struct {
	io.Reader
	io.Closer
}

func Log() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := RequestIDFromContext(r.Context())

			if slog.Default().Enabled(r.Context(), slog.LevelDebug) {
				var bodyBytes []byte
				if r.Body != nil {
					var err error
					bodyBytes, err = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
					if err != nil {
						slog.Error(
							"error reading request body",
							slog.Any("error", err),
						)
						http.Error(
							w,
							http.StatusText(http.StatusInternalServerError),
							http.StatusInternalServerError,
						)
						return
					}
					r.Body = replayBody{
						Reader: io.MultiReader(bytes.NewReader(bodyBytes), r.Body),
						Closer: r.Body,
					}
				}

				slog.Debug("request details",
					slog.String("request_id", requestID),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("query", r.URL.RawQuery),
					slog.String("user_agent", r.UserAgent()),
					slog.Int("content_length", int(r.ContentLength)),
					slog.Any("headers", r.Header),
					slog.String("body", string(bodyBytes)),
				)
			}

			ww := wrapResponseWriter(w)

			next.ServeHTTP(ww, r)

			slog.Info("request completed",
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.statusCode),
				slog.Int("resp_size", ww.size),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size

	return size, err
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

type ctxKey string

const ctxRequestIDKey ctxKey = "request_id"

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestIDKey).(string)
	return id
}
