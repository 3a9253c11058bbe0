package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fragpit/points/internal/model"
)

//go:generate mockgen -destination ./mocks/balance_mock.go . BalanceService
type BalanceService interface {
	GetBalance(ctx context.Context, userID int) (*model.Balance, error)
}

// scheduled_points is stored but deliberately left out.
type balanceResponse struct {
	UserID         int `json:"user_id"`
	CurrentPoints  int `json:"current_points"`
	ExpiringPoints int `json:"expiring_points"`
}

func NewBalanceHandler(svc BalanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		balance, err := svc.GetBalance(r.Context(), userID)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("balance request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, balanceResponse{
			UserID:         userID,
			CurrentPoints:  balance.CurrentPoints,
			ExpiringPoints: balance.ExpiringPoints,
		})
	})
}
