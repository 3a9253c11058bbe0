package healthcheck

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination ./mocks/health_repo.go . HealthRepository
type HealthRepository interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	repo HealthRepository
}

func NewHealthcheckService(repo HealthRepository) *HealthService {
	return &HealthService{
		repo: repo,
	}
}

// Check reports whether balances and history can be served.
func (h *HealthService) Check(ctx context.Context) error {
	if err := h.repo.Ping(ctx); err != nil {
		return fmt.Errorf("points storage unavailable: %w", err)
	}
	return nil
}
