package postgresql

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/fragpit/points/internal/utils/retry"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type baseRepo struct {
	db      *pgxpool.Pool
	retrier *retry.Retrier
}

// Repositories groups every repo sharing one connection pool. Each request
// acquires its own connection from the pool and releases it when the
// statement or transaction finishes.
type Repositories struct {
	Health      *HealthRepo
	Users       *UsersRepo
	Balance     *BalanceRepo
	History     *HistoryRepo
	Items       *ItemsRepo
	Redemptions *RedemptionsRepo

	db *pgxpool.Pool
}

func NewStorage(ctx context.Context, dbDSN string) (*Repositories, error) {
	db, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		return nil, fmt.Errorf("error creating pgxpool: %w", err)
	}

	retrier := retry.New(isConnectionError)

	if err := retrier.Do(ctx, db.Ping); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return newRepositories(db, retrier), nil
}

func newRepositories(db *pgxpool.Pool, retrier *retry.Retrier) *Repositories {
	base := baseRepo{db: db, retrier: retrier}
	return &Repositories{
		Health:      &HealthRepo{baseRepo: base},
		Users:       &UsersRepo{baseRepo: base},
		Balance:     &BalanceRepo{baseRepo: base},
		History:     &HistoryRepo{baseRepo: base},
		Items:       &ItemsRepo{baseRepo: base},
		Redemptions: newRedemptionsRepo(base),
		db:          db,
	}
}

func (r *Repositories) Close() {
	r.db.Close()
}

// Identity columns are int4, so ids outside its range never match a row.
// Passing them to pgx fails the encode instead of returning no rows.
func outOfIDRange(id int) bool {
	return id < math.MinInt32 || id > math.MaxInt32
}

func isConnectionError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code)
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func isTxConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return true
		}
	}
	return false
}
