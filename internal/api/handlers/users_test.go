package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_handlers "github.com/fragpit/points/internal/api/handlers/mocks"
	"github.com/fragpit/points/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUsersListHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	type mockData struct {
		users []model.User
		err   error
	}

	tests := []struct {
		name     string
		mockData mockData
		wantCode int
		wantBody string
	}{
		{
			name: "success",
			mockData: mockData{
				users: []model.User{
					{ID: 1, Name: "Taro", CompanyName: "Acme"},
					{ID: 2, Name: "Hanako", CompanyName: "Globex"},
				},
			},
			wantCode: http.StatusOK,
			wantBody: `[
				{"id":1,"name":"Taro","company_name":"Acme"},
				{"id":2,"name":"Hanako","company_name":"Globex"}
			]`,
		},
		{
			name:     "success empty",
			mockData: mockData{users: []model.User{}},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "fail internal",
			mockData: mockData{err: errors.New("db error")},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			m := mock_handlers.NewMockUsersService(ctrl)
			m.EXPECT().
				ListUsers(gomock.Any()).
				Return(tc.mockData.users, tc.mockData.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			NewUsersListHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUserGetHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name      string
		pathID    string
		user      *model.User
		err       error
		wantCalls int
		wantCode  int
		wantBody  string
	}{
		{
			name:      "success",
			pathID:    "1",
			user:      &model.User{ID: 1, Name: "Taro", CompanyName: "Acme"},
			wantCalls: 1,
			wantCode:  http.StatusOK,
			wantBody:  `{"id":1,"name":"Taro","company_name":"Acme"}`,
		},
		{
			name:      "not found",
			pathID:    "9",
			err:       model.ErrUserNotFound,
			wantCalls: 1,
			wantCode:  http.StatusNotFound,
			wantBody:  `{"detail":"User not found"}`,
		},
		{
			name:      "id above int4 range",
			pathID:    "3000000000",
			err:       model.ErrUserNotFound,
			wantCalls: 1,
			wantCode:  http.StatusNotFound,
			wantBody:  `{"detail":"User not found"}`,
		},
		{
			name:     "bad id",
			pathID:   "abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "fail internal",
			pathID:    "1",
			err:       errors.New("db error"),
			wantCalls: 1,
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			m := mock_handlers.NewMockUsersService(ctrl)
			m.EXPECT().
				GetUser(gomock.Any(), gomock.Any()).
				Return(tc.user, tc.err).
				Times(tc.wantCalls)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/users/"+tc.pathID, nil)
			req.SetPathValue("user_id", tc.pathID)
			NewUserGetHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
