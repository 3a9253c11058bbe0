package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fragpit/points/internal/model"
	"github.com/fragpit/points/internal/utils/retry"
	"github.com/jackc/pgx/v5"
)

var (
	_ model.RedemptionRepository = (*RedemptionsRepo)(nil)
	_ model.RedemptionTx         = (*redemptionTx)(nil)
)

// A redemption holds one balance row lock for a few statements, so a
// conflicting one is retried almost immediately.
var txRetryDelays = []time.Duration{
	50 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

type RedemptionsRepo struct {
	baseRepo
	txRetrier *retry.Retrier
}

func newRedemptionsRepo(base baseRepo) *RedemptionsRepo {
	return &RedemptionsRepo{
		baseRepo:  base,
		txRetrier: retry.New(isTxConflict, txRetryDelays...),
	}
}

// WithinTx runs fn in a read committed transaction. Balance rows are
// serialised with SELECT ... FOR UPDATE; deadlocks and serialization
// failures rerun the whole unit of work.
func (r *RedemptionsRepo) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, tx model.RedemptionTx) error,
) error {
	op := func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
			IsoLevel: pgx.ReadCommitted,
		})
		if err != nil {
			return fmt.Errorf("failed to start tx: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := fn(ctx, &redemptionTx{tx: tx}); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil
	}

	return r.txRetrier.Do(ctx, op)
}

type redemptionTx struct {
	tx pgx.Tx
}

func (t *redemptionTx) GetItem(
	ctx context.Context,
	itemID int,
) (*model.RedeemableItem, error) {
	if outOfIDRange(itemID) {
		return nil, model.ErrItemNotFound
	}

	q := `
		SELECT id, name, points_required
		FROM redeemable_items
		WHERE id = $1
	`

	var it model.RedeemableItem
	row := t.tx.QueryRow(ctx, q, itemID)
	if err := row.Scan(&it.ID, &it.Name, &it.PointsRequired); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &it, nil
}

func (t *redemptionTx) GetBalanceForUpdate(
	ctx context.Context,
	userID int,
) (*model.Balance, error) {
	if outOfIDRange(userID) {
		return nil, model.ErrUserNotFound
	}
	return scanBalance(
		t.tx.QueryRow(ctx, selectBalanceByUser+" FOR UPDATE", userID),
	)
}

func (t *redemptionTx) DebitBalance(
	ctx context.Context,
	balanceID int,
	points int,
	at time.Time,
) (int, error) {
	q := `
		UPDATE user_balance
		SET current_points = current_points - @points,
			updated_at = @updatedAt
		WHERE id = @id
		RETURNING current_points
	`

	args := pgx.NamedArgs{
		"points":    points,
		"updatedAt": at,
		"id":        balanceID,
	}

	var current int
	if err := t.tx.QueryRow(ctx, q, args).Scan(&current); err != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}

	return current, nil
}

func (t *redemptionTx) AddRedemption(
	ctx context.Context,
	rd *model.Redemption,
) error {
	q := `
		INSERT INTO redemption_history (user_id, item_id, date, points_spent)
		VALUES (@userID, @itemID, @date, @pointsSpent)
		RETURNING id
	`

	args := pgx.NamedArgs{
		"userID":      rd.UserID,
		"itemID":      rd.ItemID,
		"date":        rd.Date,
		"pointsSpent": rd.PointsSpent,
	}

	if err := t.tx.QueryRow(ctx, q, args).Scan(&rd.ID); err != nil {
		return fmt.Errorf("failed to add redemption: %w", err)
	}

	return nil
}

func (t *redemptionTx) AddPointHistory(
	ctx context.Context,
	e *model.PointHistoryEntry,
) error {
	q := `
		INSERT INTO point_history (user_id, date, description, points, remarks)
		VALUES (@userID, @date, @description, @points, @remarks)
		RETURNING id
	`

	args := pgx.NamedArgs{
		"userID":      e.UserID,
		"date":        e.Date,
		"description": e.Description,
		"points":      e.Points,
		"remarks":     e.Remarks,
	}

	if err := t.tx.QueryRow(ctx, q, args).Scan(&e.ID); err != nil {
		return fmt.Errorf("failed to add point history: %w", err)
	}

	return nil
}
