package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/points/internal/model"
	"github.com/jackc/pgx/v5"
)

var _ model.UsersRepository = (*UsersRepo)(nil)

type UsersRepo struct {
	baseRepo
}

func (r *UsersRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	q := `
		SELECT id, name, company_name
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("users query error: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CompanyName); err != nil {
			return nil, fmt.Errorf("error reading values: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}

	return users, nil
}

func (r *UsersRepo) GetUser(ctx context.Context, id int) (*model.User, error) {
	if outOfIDRange(id) {
		return nil, model.ErrUserNotFound
	}

	q := `
		SELECT id, name, company_name
		FROM users
		WHERE id = $1
	`

	var u model.User
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&u.ID, &u.Name, &u.CompanyName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}
