package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/points/internal/service/healthcheck"
)

var _ healthcheck.HealthRepository = (*HealthRepo)(nil)

// Tables a redemption touches; a pool that answers without them is not
// ready to serve points.
var pointsTables = []string{
	"users",
	"user_balance",
	"point_history",
	"redeemable_items",
	"redemption_history",
}

type HealthRepo struct {
	baseRepo
}

// Ping checks that the pool answers and every points table is present.
func (r *HealthRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("points storage not initialized")
	}

	op := func(ctx context.Context) error {
		var missing int
		err := r.db.QueryRow(ctx, `
			SELECT count(*)
			FROM unnest($1::text[]) AS t(name)
			WHERE to_regclass(t.name) IS NULL
		`, pointsTables).Scan(&missing)
		if err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("%d points tables missing", missing)
		}
		return nil
	}

	return r.retrier.Do(ctx, op)
}
