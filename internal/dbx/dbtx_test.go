package dbx_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/hotelres/internal/common"
	"github.com/dmitrijs2005/hotelres/internal/dbx"
	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/dmitrijs2005/hotelres/internal/models"
	"github.com/dmitrijs2005/hotelres/internal/repositories/repomanager"
	"github.com/dmitrijs2005/hotelres/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUsersDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, _, err := repomanager.Open(ctx, repomanager.DriverSQLite, ":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func guest(email string) *models.User {
	return &models.User{
		ID:           "id-" + email,
		FirstName:    "Grace",
		LastName:     "Guest",
		Email:        email,
		Salt:         "00112233445566778899aabbccddeeff",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
	}
}

func lookup(t *testing.T, db *sql.DB, email string) error {
	t.Helper()
	_, err := users.NewSQLiteRepository(db).GetUserByEmail(context.Background(), email)
	return err
}

func TestWithTx_CommitsUserOnSuccess(t *testing.T) {
	db := openUsersDB(t)

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := users.NewSQLiteRepository(tx).Create(ctx, guest("grace@hotel.local"))
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, lookup(t, db, "grace@hotel.local"), "user must be visible after commit")
}

func TestWithTx_RollsBackUserOnError(t *testing.T) {
	db := openUsersDB(t)
	failure := errors.New("room service unavailable")

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := users.NewSQLiteRepository(tx).Create(ctx, guest("ann@hotel.local"))
		require.NoError(t, err)
		return failure
	})
	require.ErrorIs(t, err, failure)
	assert.ErrorIs(t, lookup(t, db, "ann@hotel.local"), common.ErrorNotFound, "insert must be rolled back")
}

func TestWithTx_DuplicateInsideTxRollsBackEarlierInsert(t *testing.T) {
	db := openUsersDB(t)

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)
		if _, err := repo.Create(ctx, guest("first@hotel.local")); err != nil {
			return err
		}
		dup := guest("first@hotel.local")
		dup.ID = "other-id"
		_, err := repo.Create(ctx, dup)
		return err
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.ErrorIs(t, lookup(t, db, "first@hotel.local"), common.ErrorNotFound)
}

func TestWithTx_RollsBackUserOnPanic(t *testing.T) {
	db := openUsersDB(t)

	require.PanicsWithValue(t, "kaput", func() {
		_ = dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			_, err := users.NewSQLiteRepository(tx).Create(ctx, guest("panic@hotel.local"))
			require.NoError(t, err)
			panic("kaput")
		})
	})
	assert.ErrorIs(t, lookup(t, db, "panic@hotel.local"), common.ErrorNotFound, "insert must be rolled back on panic")
}

func TestWithTx_BeginErrorIsWrapped(t *testing.T) {
	db := openUsersDB(t)
	require.NoError(t, db.Close())

	called := false
	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "begin tx")
	assert.False(t, called, "fn must not run without a transaction")
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := openUsersDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "begin tx")
}
