package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidPoints      = errors.New("points must be positive")
)

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID int) (*Balance, error)
}

// Balance holds a user's point totals. ScheduledPoints is persisted but
// never exposed through the API.
type Balance struct {
	ID              int
	UserID          int
	CurrentPoints   int
	ScheduledPoints int
	ExpiringPoints  int
	UpdatedAt       time.Time
}

func ValidatePoints(points int) bool {
	return points > 0
}
