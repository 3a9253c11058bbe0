package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal json response", slog.Any("error", err))
		writeError(
			w,
			http.StatusInternalServerError,
			http.StatusText(http.StatusInternalServerError),
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Detail: detail}); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

func writeInternalError(w http.ResponseWriter) {
	writeError(
		w,
		http.StatusInternalServerError,
		http.StatusText(http.StatusInternalServerError),
	)
}

func pathID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// decodeJSONRequest reads a single JSON object into data. It writes the error
// response itself and reports false when the request is rejected.
func decodeJSONRequest(
	w http.ResponseWriter,
	r *http.Request,
	data any,
) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		slog.Error(
			"request with an empty or unsupported content type",
			slog.String("content_type", r.Header.Get("Content-Type")),
		)
		writeError(w, http.StatusUnsupportedMediaType, "wrong content type")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		var mberr *http.MaxBytesError
		slog.Warn("invalid JSON", slog.Any("error", err))
		if errors.As(err, &mberr) {
			writeError(
				w,
				http.StatusRequestEntityTooLarge,
				"request body too large",
			)
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		slog.Warn("invalid JSON", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}

	return true
}
