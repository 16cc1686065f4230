package postgresql

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx without a live connection; only its identity
// matters for the querier-selection checks.
type stubTx struct{ pgx.Tx }

func TestGetQuerierPrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))
	assert.Equal(t, pgx.Tx(tx), GetQuerier(ctx, db))
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	return db
}

func TestWithTransactionCommitsAndRollsBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.Exec(ctx, `CREATE TEMPORARY TABLE IF NOT EXISTS tx_check_rows (n INT)`)
	require.NoError(t, err)

	err = WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := GetQuerier(txCtx, db).Exec(txCtx, `INSERT INTO tx_check_rows (n) VALUES (1)`)
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if _, err := GetQuerier(txCtx, db).Exec(txCtx, `INSERT INTO tx_check_rows (n) VALUES (2)`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM tx_check_rows`).Scan(&count))
	assert.Equal(t, 1, count)
}
