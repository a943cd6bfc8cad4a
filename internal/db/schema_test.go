package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlx.NewDb(sqlDB, "pgx"), mock
}

func TestCreateAndDropTables(t *testing.T) {
	db, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE IF EXISTS posts`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, CreateTables(ctx, db))
	require.NoError(t, DropTables(ctx, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTablesError(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("permission denied")

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).WillReturnError(boom)

	err := CreateTables(context.Background(), db)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
