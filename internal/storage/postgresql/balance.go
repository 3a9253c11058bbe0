package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/points/internal/model"
	"github.com/jackc/pgx/v5"
)

var _ model.BalanceRepository = (*BalanceRepo)(nil)

// Lookups take the first balance row for a user; the schema does not
// enforce one row per user.
const selectBalanceByUser = `
	SELECT id, user_id, current_points, scheduled_points,
		expiring_points, updated_at
	FROM user_balance
	WHERE user_id = $1
	ORDER BY id
	LIMIT 1
`

type BalanceRepo struct {
	baseRepo
}

func (r *BalanceRepo) GetBalance(
	ctx context.Context,
	userID int,
) (*model.Balance, error) {
	if outOfIDRange(userID) {
		return nil, model.ErrUserNotFound
	}
	return scanBalance(r.db.QueryRow(ctx, selectBalanceByUser, userID))
}

func scanBalance(row pgx.Row) (*model.Balance, error) {
	var b model.Balance
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CurrentPoints,
		&b.ScheduledPoints,
		&b.ExpiringPoints,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &b, nil
}
