package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fragpit/points/internal/model"
)

//go:generate mockgen -destination ./mocks/history_mock.go . HistoryService
type HistoryService interface {
	ListAllHistory(
		ctx context.Context,
		userID int,
	) ([]model.PointHistoryEntry, error)
	ListHistory(
		ctx context.Context,
		userID int,
		q model.HistoryQuery,
	) ([]model.PointHistoryEntry, error)
}

type legacyHistoryResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type historyResponse struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Points      int     `json:"points"`
	Remarks     *string `json:"remarks"`
}

func NewLegacyHistoryHandler(svc HistoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		history, err := svc.ListAllHistory(r.Context(), userID)
		if err != nil {
			slog.Error("history request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		response := make([]legacyHistoryResponse, 0, len(history))
		for _, h := range history {
			response = append(response, legacyHistoryResponse{
				Date:        h.Date.Format(time.RFC3339),
				Description: h.Description,
				Points:      h.Points,
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewHistoryHandler(svc HistoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		q, err := parseHistoryQuery(r)
		if err != nil {
			slog.Warn("bad history query", slog.Any("error", err))
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		history, err := svc.ListHistory(r.Context(), userID, q)
		if err != nil {
			if errors.Is(err, model.ErrInvalidLimit) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.Error("history request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		response := make([]historyResponse, 0, len(history))
		for _, h := range history {
			response = append(response, historyResponse{
				ID:          h.ID,
				Date:        h.Date.Format(time.RFC3339),
				Description: h.Description,
				Points:      h.Points,
				Remarks:     h.Remarks,
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func parseHistoryQuery(r *http.Request) (model.HistoryQuery, error) {
	values := r.URL.Query()

	q := model.HistoryQuery{Limit: model.DefaultHistoryLimit}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return q, model.ErrInvalidLimit
		}
		q.Limit = limit
	}

	filter, err := model.ParseHistoryFilter(values.Get("filter_type"))
	if err != nil {
		return q, err
	}
	q.Filter = filter

	return q, nil
}
