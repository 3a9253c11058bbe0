package model

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidFilter = errors.New("invalid history filter")
	ErrInvalidLimit  = errors.New("invalid history limit")
)

const DefaultHistoryLimit = 5

//go:generate mockgen -destination ../service/history/mocks/history_repo.go . PointHistoryRepository
type PointHistoryRepository interface {
	ListAllHistory(ctx context.Context, userID int) ([]PointHistoryEntry, error)
	ListHistory(
		ctx context.Context,
		userID int,
		q HistoryQuery,
	) ([]PointHistoryEntry, error)
}

// PointHistoryEntry is an append-only ledger line. Points is signed:
// positive entries are earned, negative are spent.
type PointHistoryEntry struct {
	ID          int
	UserID      int
	Date        time.Time
	Description string
	Points      int
	Remarks     *string
}

type HistoryFilter int

const (
	FilterAll HistoryFilter = iota
	FilterEarned
	FilterUsed
)

func (f HistoryFilter) String() string {
	switch f {
	case FilterEarned:
		return "earned"
	case FilterUsed:
		return "used"
	default:
		return "all"
	}
}

func ParseHistoryFilter(v string) (HistoryFilter, error) {
	switch v {
	case "", "all":
		return FilterAll, nil
	case "earned":
		return FilterEarned, nil
	case "used":
		return FilterUsed, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrInvalidFilter, v)
	}
}

// HistoryQuery selects entries for a user. Limit 0 means no limit.
type HistoryQuery struct {
	Filter HistoryFilter
	Limit  int
}

func (q HistoryQuery) Validate() error {
	if q.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, q.Limit)
	}
	return nil
}
