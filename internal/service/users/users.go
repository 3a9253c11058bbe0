package users

import (
	"context"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/model"
)

var _ handlers.UsersService = (*UsersService)(nil)

type UsersService struct {
	repo model.UsersRepository
}

func NewUsersService(repo model.UsersRepository) *UsersService {
	return &UsersService{
		repo: repo,
	}
}

func (s *UsersService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UsersService) GetUser(
	ctx context.Context,
	id int,
) (*model.User, error) {
	return s.repo.GetUser(ctx, id)
}
