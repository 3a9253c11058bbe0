package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "generated", inbound: ""},
		{name: "propagated", inbound: "abc-123", wantSame: true},
		{name: "oversized replaced", inbound: strings.Repeat("x", 200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(RequestIDHeader, tc.inbound)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tc.wantSame {
				assert.Equal(t, tc.inbound, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		preflight  bool
		wantCode   int
		wantOrigin string
	}{
		{
			name:       "wildcard",
			origins:    []string{"*"},
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantCode:   http.StatusTeapot,
			wantOrigin: "http://localhost:3000",
		},
		{
			name:     "origin not allowed",
			origins:  []string{"https://app.example.com"},
			method:   http.MethodGet,
			origin:   "http://evil.example.com",
			wantCode: http.StatusTeapot,
		},
		{
			name:       "preflight",
			origins:    []string{"https://app.example.com"},
			method:     http.MethodOptions,
			origin:     "https://app.example.com",
			preflight:  true,
			wantCode:   http.StatusNoContent,
			wantOrigin: "https://app.example.com",
		},
		{
			name:     "no origin header",
			origins:  []string{"*"},
			method:   http.MethodGet,
			wantCode: http.StatusTeapot,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/use-points", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			}

			rec := httptest.NewRecorder()
			CORS(tc.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tc.preflight {
				assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			}
		})
	}
}

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	got []observation
}

func (f *fakeObserver) ObserveRequest(
	method, route string,
	status int,
	_ time.Duration,
) {
	f.got = append(f.got, observation{method, route, status})
}

func TestMetrics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	obs := &fakeObserver{}
	h := Metrics(obs)(mux)

	for _, path := range []string{"/users/7", "/nowhere"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, obs.got, 2)
	assert.Equal(t, observation{"GET", "GET /users/{user_id}", 404}, obs.got[0])
	assert.Equal(t, observation{"GET", "unmatched", 404}, obs.got[1])
}

func TestLog_KeepsBodyReadable(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(
		&strings.Builder{},
		&slog.HandlerOptions{Level: slog.LevelDebug},
	)))
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.DiscardHandler)) })

	var body string
	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			body = string(b)
			w.WriteHeader(http.StatusCreated)
		}),
		RequestID(),
		Log(),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/use-points", strings.NewReader(`{"points":1}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"points":1}`, body)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestLog_BoundsLoggedBody(t *testing.T) {
	var logs strings.Builder
	slog.SetDefault(slog.New(slog.NewTextHandler(
		&logs,
		&slog.HandlerOptions{Level: slog.LevelDebug},
	)))
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.DiscardHandler)) })

	payload := strings.Repeat("a", 3*maxLoggedBody)

	var got int
	h := Log()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = len(b)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/use-points", strings.NewReader(payload))
	h.ServeHTTP(rec, req)

	assert.Equal(t, len(payload), got)
	assert.Contains(t, logs.String(), strings.Repeat("a", maxLoggedBody))
	assert.NotContains(t, logs.String(), strings.Repeat("a", maxLoggedBody+1))
}
