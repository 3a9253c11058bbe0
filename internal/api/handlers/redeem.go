package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fragpit/points/internal/model"
)

const redeemedMessage = "Points redeemed successfully"

//go:generate mockgen -destination ./mocks/redemption_mock.go . RedemptionService
type RedemptionService interface {
	RedeemItem(ctx context.Context, userID, itemID int) (int, error)
	UsePoints(ctx context.Context, userID, itemID, points int) (int, error)
}

type redeemResponse struct {
	Message    string `json:"message"`
	NewBalance int    `json:"new_balance"`
}

// Pointers tell a missing field apart from an explicit zero.
type usePointsRequest struct {
	UserID *int `json:"user_id"`
	ItemID *int `json:"item_id"`
	Points *int `json:"points"`
}

type usePointsResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RemainingPoints int    `json:"remaining_points"`
}

func NewRedeemItemHandler(svc RedemptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		itemID, err := pathID(r, "item_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		balance, err := svc.RedeemItem(r.Context(), userID, itemID)
		if err != nil {
			writeRedemptionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, redeemResponse{
			Message:    redeemedMessage,
			NewBalance: balance,
		})
	})
}

func NewUsePointsHandler(svc RedemptionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req usePointsRequest
		if !decodeJSONRequest(w, r, &req) {
			return
		}

		if req.UserID == nil || req.ItemID == nil || req.Points == nil {
			writeError(
				w,
				http.StatusBadRequest,
				"user_id, item_id and points are required",
			)
			return
		}

		remaining, err := svc.UsePoints(
			r.Context(),
			*req.UserID,
			*req.ItemID,
			*req.Points,
		)
		if err != nil {
			writeRedemptionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, usePointsResponse{
			Success:         true,
			Message:         redeemedMessage,
			RemainingPoints: remaining,
		})
	})
}

func writeRedemptionError(w http.ResponseWriter, err error) {
	slog.Warn("error redeeming points", slog.Any("error", err))
	switch {
	case errors.Is(err, model.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, model.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, model.ErrInsufficientPoints):
		writeError(w, http.StatusBadRequest, "Not enough points")
	case errors.Is(err, model.ErrInvalidPoints):
		writeError(w, http.StatusBadRequest, "Points must be positive")
	default:
		slog.Error("redemption failed", slog.Any("error", err))
		writeInternalError(w)
	}
}
