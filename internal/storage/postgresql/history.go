package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/fragpit/points/internal/model"
	"github.com/jackc/pgx/v5"
)

var _ model.PointHistoryRepository = (*HistoryRepo)(nil)

type HistoryRepo struct {
	baseRepo
}

func (r *HistoryRepo) ListAllHistory(
	ctx context.Context,
	userID int,
) ([]model.PointHistoryEntry, error) {
	if outOfIDRange(userID) {
		return []model.PointHistoryEntry{}, nil
	}

	q := `
		SELECT id, user_id, date, description, points, remarks
		FROM point_history
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("history query error: %w", err)
	}

	return collectHistory(rows)
}

func (r *HistoryRepo) ListHistory(
	ctx context.Context,
	userID int,
	hq model.HistoryQuery,
) ([]model.PointHistoryEntry, error) {
	if outOfIDRange(userID) {
		return []model.PointHistoryEntry{}, nil
	}

	q, args := buildHistoryQuery(userID, hq)

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("history query error: %w", err)
	}

	return collectHistory(rows)
}

func buildHistoryQuery(
	userID int,
	hq model.HistoryQuery,
) (string, pgx.NamedArgs) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, date, description, points, remarks
		FROM point_history
		WHERE user_id = @userID`)

	switch hq.Filter {
	case model.FilterEarned:
		sb.WriteString(" AND points > 0")
	case model.FilterUsed:
		sb.WriteString(" AND points < 0")
	}

	sb.WriteString(" ORDER BY date DESC, id DESC")

	args := pgx.NamedArgs{"userID": userID}
	if hq.Limit > 0 {
		sb.WriteString(" LIMIT @limit")
		args["limit"] = hq.Limit
	}

	return sb.String(), args
}

func collectHistory(rows pgx.Rows) ([]model.PointHistoryEntry, error) {
	defer rows.Close()

	history := []model.PointHistoryEntry{}
	for rows.Next() {
		var e model.PointHistoryEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.Description,
			&e.Points,
			&e.Remarks,
		); err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return history, nil
}
