package balance

import (
	"context"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/model"
)

var _ handlers.BalanceService = (*BalanceService)(nil)

type BalanceService struct {
	repo model.BalanceRepository
}

func NewBalanceService(repo model.BalanceRepository) *BalanceService {
	return &BalanceService{
		repo: repo,
	}
}

func (b *BalanceService) GetBalance(
	ctx context.Context,
	userID int,
) (*model.Balance, error) {
	return b.repo.GetBalance(ctx, userID)
}
