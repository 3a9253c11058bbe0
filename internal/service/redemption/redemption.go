// Package redemption exchanges points for catalog items. Both request shapes
// share one transaction: the balance debit and the two audit rows commit
// together or not at all.
package redemption

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fragpit/points/internal/api/handlers"
	"github.com/fragpit/points/internal/model"
)

var _ handlers.RedemptionService = (*RedemptionService)(nil)

const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient_points"
	OutcomeNotFound     = "not_found"
	OutcomeInvalid      = "invalid"
	OutcomeError        = "error"
)

// Recorder observes finished redemptions.
type Recorder interface {
	ObserveRedemption(kind, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRedemption(string, string) {}

type RedemptionService struct {
	repo     model.RedemptionRepository
	recorder Recorder
	now      func() time.Time
}

type Option func(*RedemptionService)

func WithRecorder(r Recorder) Option {
	return func(s *RedemptionService) {
		s.recorder = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *RedemptionService) {
		s.now = now
	}
}

func NewRedemptionService(
	repo model.RedemptionRepository,
	opts ...Option,
) *RedemptionService {
	s := &RedemptionService{
		repo:     repo,
		recorder: nopRecorder{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RedeemItem debits the item's listed price and returns the new balance.
func (s *RedemptionService) RedeemItem(
	ctx context.Context,
	userID, itemID int,
) (int, error) {
	return s.Redeem(ctx, model.RedeemRequest{
		UserID: userID,
		ItemID: itemID,
		Kind:   model.KindFixed,
	})
}

// UsePoints debits exactly points for the item, whatever its listed price,
// and returns the remaining balance.
func (s *RedemptionService) UsePoints(
	ctx context.Context,
	userID, itemID, points int,
) (int, error) {
	return s.Redeem(ctx, model.RedeemRequest{
		UserID: userID,
		ItemID: itemID,
		Kind:   model.KindFlexible,
		Points: points,
	})
}

func (s *RedemptionService) Redeem(
	ctx context.Context,
	req model.RedeemRequest,
) (int, error) {
	current, err := s.redeem(ctx, req)
	s.recorder.ObserveRedemption(req.Kind.String(), outcome(err))
	return current, err
}

func (s *RedemptionService) redeem(
	ctx context.Context,
	req model.RedeemRequest,
) (int, error) {
	var current int
	err := s.repo.WithinTx(ctx, func(
		ctx context.Context,
		tx model.RedemptionTx,
	) error {
		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}

		balance, err := tx.GetBalanceForUpdate(ctx, req.UserID)
		if err != nil {
			return err
		}

		// Unknown users and items take precedence over a bad amount.
		if req.Kind == model.KindFlexible && !model.ValidatePoints(req.Points) {
			return model.ErrInvalidPoints
		}

		amount := req.DebitAmount(item)
		if balance.CurrentPoints < amount {
			return model.ErrInsufficientPoints
		}

		now := s.now().UTC()

		current, err = tx.DebitBalance(ctx, balance.ID, amount, now)
		if err != nil {
			return err
		}

		if err := tx.AddRedemption(ctx, &model.Redemption{
			UserID:      req.UserID,
			ItemID:      item.ID,
			Date:        now,
			PointsSpent: amount,
		}); err != nil {
			return err
		}

		entry := &model.PointHistoryEntry{
			UserID:      req.UserID,
			Date:        now,
			Description: model.RedemptionDescription(item.Name),
			Points:      -amount,
		}
		if req.Kind == model.KindFlexible {
			remarks := model.RedemptionRemarks(item.Name)
			entry.Remarks = &remarks
		}

		return tx.AddPointHistory(ctx, entry)
	})
	if err != nil {
		return 0, fmt.Errorf("redemption failed: %w", err)
	}

	slog.Info(
		"points redeemed",
		slog.Int("user_id", req.UserID),
		slog.Int("item_id", req.ItemID),
		slog.String("kind", req.Kind.String()),
		slog.Int("balance", current),
	)

	return current, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, model.ErrInsufficientPoints):
		return OutcomeInsufficient
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrItemNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrInvalidPoints):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
