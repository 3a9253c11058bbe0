package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fragpit/points/internal/model"
)

//go:generate mockgen -destination ./mocks/users_mock.go . UsersService
type UsersService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
}

type userResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		CompanyName: u.CompanyName,
	}
}

func NewUsersListHandler(svc UsersService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			slog.Error("users request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		response := make([]userResponse, 0, len(users))
		for _, u := range users {
			response = append(response, newUserResponse(u))
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewUserGetHandler(svc UsersService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("user request error", slog.Any("error", err))
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(*user))
	})
}
