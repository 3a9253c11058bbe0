package postgresql

import (
	"context"
	"fmt"

	"github.com/fragpit/points/internal/model"
)

var _ model.ItemsRepository = (*ItemsRepo)(nil)

type ItemsRepo struct {
	baseRepo
}

func (r *ItemsRepo) ListItems(
	ctx context.Context,
) ([]model.RedeemableItem, error) {
	q := `
		SELECT id, name, points_required
		FROM redeemable_items
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("items query error: %w", err)
	}
	defer rows.Close()

	items := []model.RedeemableItem{}
	for rows.Next() {
		var it model.RedeemableItem
		if err := rows.Scan(&it.ID, &it.Name, &it.PointsRequired); err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return items, nil
}
