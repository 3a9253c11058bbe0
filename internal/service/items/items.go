package items

import (
	"context"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/model"
)

var _ handlers.ItemsService = (*ItemsService)(nil)

type ItemsService struct {
	repo model.ItemsRepository
}

func NewItemsService(repo model.ItemsRepository) *ItemsService {
	return &ItemsService{
		repo: repo,
	}
}

func (s *ItemsService) ListItems(
	ctx context.Context,
) ([]model.RedeemableItem, error) {
	return s.repo.ListItems(ctx)
}
