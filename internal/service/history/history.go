package history

import (
	"context"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/model"
)

var _ handlers.HistoryService = (*HistoryService)(nil)

type HistoryService struct {
	repo model.PointHistoryRepository
}

func NewHistoryService(repo model.PointHistoryRepository) *HistoryService {
	return &HistoryService{
		repo: repo,
	}
}

// ListAllHistory returns every entry for the user in insertion order.
func (s *HistoryService) ListAllHistory(
	ctx context.Context,
	userID int,
) ([]model.PointHistoryEntry, error) {
	return s.repo.ListAllHistory(ctx, userID)
}

// ListHistory returns the user's entries newest first, filtered by sign
// and truncated to q.Limit when it is positive.
func (s *HistoryService) ListHistory(
	ctx context.Context,
	userID int,
	q model.HistoryQuery,
) ([]model.PointHistoryEntry, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, userID, q)
}
