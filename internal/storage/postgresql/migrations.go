package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

const migrationsVersionTable = "points_migrations"

func runMigrations(ctx context.Context, conn *pgxpool.Pool) error {
	poolConn, err := conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error creating pool connection: %w", err)
	}
	defer poolConn.Release()

	m, err := migrate.NewMigrator(ctx, poolConn.Conn(), migrationsVersionTable)
	if err != nil {
		return fmt.Errorf("error migrations init: %w", err)
	}

	m.Migrations = []*migrate.Migration{
		{
			Sequence: 1,
			Name:     "init",
			UpSQL: `
			CREATE TABLE IF NOT EXISTS users (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					company_name VARCHAR(255) NOT NULL
			);

			CREATE TABLE IF NOT EXISTS user_balance (
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					current_points INTEGER NOT NULL DEFAULT 0,
					scheduled_points INTEGER NOT NULL DEFAULT 0,
					expiring_points INTEGER NOT NULL DEFAULT 0,
					updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS point_history (
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
					description VARCHAR(255) NOT NULL,
					points INTEGER NOT NULL,
					remarks TEXT
			);

			CREATE TABLE IF NOT EXISTS redeemable_items (
					id SERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					points_required INTEGER NOT NULL CHECK (points_required > 0)
			);

			CREATE TABLE IF NOT EXISTS redemption_history (
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL REFERENCES users(id),
					item_id INTEGER NOT NULL REFERENCES redeemable_items(id),
					date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
					points_spent INTEGER NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_user_balance_user_id
			ON user_balance (user_id);

			CREATE INDEX IF NOT EXISTS idx_point_history_user_id_date
			ON point_history (user_id, date DESC);

			CREATE INDEX IF NOT EXISTS idx_redemption_history_user_id
			ON redemption_history (user_id);
			`,
			DownSQL: `
			DROP INDEX IF EXISTS idx_redemption_history_user_id;
			DROP INDEX IF EXISTS idx_point_history_user_id_date;
			DROP INDEX IF EXISTS idx_user_balance_user_id;

			DROP TABLE IF EXISTS redemption_history;
			DROP TABLE IF EXISTS redeemable_items;
			DROP TABLE IF EXISTS point_history;
			DROP TABLE IF EXISTS user_balance;
			DROP TABLE IF EXISTS users;
			`,
		},
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
