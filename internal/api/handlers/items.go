package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fragpit/points/internal/model"
)

//go:generate mockgen -destination ./mocks/items_mock.go . ItemsService
type ItemsService interface {
	ListItems(ctx context.Context) ([]model.RedeemableItem, error)
}

type itemResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"points_required"`
}

func NewItemsHandler(svc ItemsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			slog.Error("items request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		response := make([]itemResponse, 0, len(items))
		for _, it := range items {
			response = append(response, itemResponse{
				ID:             it.ID,
				Name:           it.Name,
				PointsRequired: it.PointsRequired,
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}
