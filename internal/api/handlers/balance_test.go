package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_handlers "github.com/fragpit/points/internal/api/handlers/mocks"
	"github.com/fragpit/points/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBalanceHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	type mockData struct {
		balance *model.Balance
		err     error
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
				balance: &model.Balance{
					ID:              5,
					UserID:          1,
					CurrentPoints:   100,
					ScheduledPoints: 40,
					ExpiringPoints:  10,
				},
			},
			wantCode: http.StatusOK,
			wantBody: `{"user_id":1,"current_points":100,"expiring_points":10}`,
		},
		{
			name:     "not found",
			mockData: mockData{err: model.ErrUserNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"User not found"}`,
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

			m := mock_handlers.NewMockBalanceService(ctrl)
			m.EXPECT().
				GetBalance(gomock.Any(), 1).
				Return(tc.mockData.balance, tc.mockData.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/users/1/balance", nil)
			req.SetPathValue("user_id", "1")
			NewBalanceHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestBalanceHandler_HidesScheduledPoints(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	for _, scheduled := range []int{0, 1, 250, -3} {
		ctrl := gomock.NewController(t)
		m := mock_handlers.NewMockBalanceService(ctrl)
		m.EXPECT().
			GetBalance(gomock.Any(), 7).
			Return(&model.Balance{
				UserID:          7,
				CurrentPoints:   1,
				ScheduledPoints: scheduled,
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/7/balance", nil)
		req.SetPathValue("user_id", "7")
		NewBalanceHandler(m).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "scheduled_points")
		assert.Len(t, body, 3)
	}
}
