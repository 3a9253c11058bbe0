package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fragpit/points/internal/model"
	"github.com/fragpit/points/internal/service/redemption"
	"github.com/fragpit/points/internal/storage/postgresql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStorage needs a disposable database; every table is truncated.
func setupStorage(t *testing.T) (*postgresql.Repositories, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()
	st, err := postgresql.NewStorage(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `
		TRUNCATE redemption_history, point_history, user_balance,
			redeemable_items, users RESTART IDENTITY CASCADE;

		INSERT INTO users (name, company_name) VALUES
			('Taro', 'Acme'), ('Hanako', 'Globex');

		INSERT INTO user_balance
			(user_id, current_points, scheduled_points, expiring_points)
		VALUES (1, 100, 40, 10);

		INSERT INTO redeemable_items (name, points_required) VALUES
			('Coffee', 30), ('Headphones', 500);
	`)
	require.NoError(t, err)

	return st, db
}

func countRows(t *testing.T, db *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestReadAccessors(t *testing.T) {
	st, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Health.Ping(ctx))

	_, err := st.Users.GetUser(ctx, 3000000000)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	users, err := st.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	u, err := st.Users.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Globex", u.CompanyName)

	_, err = st.Users.GetUser(ctx, 99)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	b, err := st.Balance.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, b.CurrentPoints)
	assert.Equal(t, 40, b.ScheduledPoints)
	assert.Equal(t, 10, b.ExpiringPoints)

	_, err = st.Balance.GetBalance(ctx, 2)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	items, err := st.Items.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	history, err := st.History.ListAllHistory(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestListHistory(t *testing.T) {
	st, db := setupStorage(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []int{10, -5, 20, -3, 1, 2, 3, 4, 5, 6}
	for i, p := range points {
		_, err := db.Exec(ctx, `
			INSERT INTO point_history (user_id, date, description, points)
			VALUES (1, $1, 'entry', $2)`,
			base.Add(time.Duration(i)*time.Hour), p,
		)
		require.NoError(t, err)
	}

	pointsOf := func(es []model.PointHistoryEntry) []int {
		var out []int
		for _, e := range es {
			out = append(out, e.Points)
		}
		return out
	}

	got, err := st.History.ListHistory(ctx, 1, model.HistoryQuery{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2}, pointsOf(got))

	got, err = st.History.ListHistory(ctx, 1, model.HistoryQuery{
		Filter: model.FilterEarned,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1, 20, 10}, pointsOf(got))

	got, err = st.History.ListHistory(ctx, 1, model.HistoryQuery{
		Filter: model.FilterUsed,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{-3, -5}, pointsOf(got))

	got, err = st.History.ListAllHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, points, pointsOf(got))
}

func TestRedemption(t *testing.T) {
	st, db := setupStorage(t)
	ctx := context.Background()
	svc := redemption.NewRedemptionService(st.Redemptions)

	remaining, err := svc.UsePoints(ctx, 1, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 70, remaining)

	b, err := st.Balance.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 70, b.CurrentPoints)
	assert.Equal(t, 1, countRows(t, db, "redemption_history"))

	history, err := st.History.ListAllHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, -30, history[0].Points)
	require.NotNil(t, history[0].Remarks)
	assert.Equal(t, "Item redemption: Coffee", *history[0].Remarks)

	_, err = svc.UsePoints(ctx, 1, 1, 1000)
	assert.ErrorIs(t, err, model.ErrInsufficientPoints)
	_, err = svc.RedeemItem(ctx, 1, 2)
	assert.ErrorIs(t, err, model.ErrInsufficientPoints)
	_, err = svc.RedeemItem(ctx, 2, 1)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	_, err = svc.RedeemItem(ctx, 1, 42)
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	b, err = st.Balance.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 70, b.CurrentPoints)
	assert.Equal(t, 1, countRows(t, db, "redemption_history"))
	assert.Equal(t, 1, countRows(t, db, "point_history"))
}

func TestRedemption_Concurrent(t *testing.T) {
	st, db := setupStorage(t)
	ctx := context.Background()
	svc := redemption.NewRedemptionService(st.Redemptions)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.RedeemItem(ctx, 1, 1)
		}()
	}
	wg.Wait()

	b, err := st.Balance.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, b.CurrentPoints)
	assert.Equal(t, 3, countRows(t, db, "redemption_history"))
	assert.Equal(t, 3, countRows(t, db, "point_history"))
}
