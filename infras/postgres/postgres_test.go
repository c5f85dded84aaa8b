package postgres

import (
	"context"
	"errors"
	"testing"

	"ourstory/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return NewFromDB(sqlx.NewDb(db, "postgres")), mock
}

func TestConnection_Unavailable(t *testing.T) {
	conn := &Connection{}

	assert.False(t, conn.Available())

	_, err := conn.DB()
	assert.ErrorIs(t, err, failure.ErrDatabaseUnavailable)

	assert.ErrorIs(t, conn.Ping(context.Background()), failure.ErrDatabaseUnavailable)

	called := false
	err = conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, failure.ErrDatabaseUnavailable)
	assert.False(t, called)

	var nilConn *Connection
	assert.False(t, nilConn.Available())
	conn.Close()
}

func TestConnection_Ping(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectPing()
	assert.NoError(t, conn.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, conn.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_WithTransaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM journal").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(context.Background(), "DELETE FROM journal")

			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("insert failed")
		err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
				panic("unexpected")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := conn.WithTransaction(context.Background(), func(_ *sqlx.Tx) error {
			t.Fatal("fn must not run")

			return nil
		})

		assert.ErrorContains(t, err, "too many connections")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWithConnectTimeout(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@db:5432/app?connect_timeout=5&sslmode=disable",
		withConnectTimeout("postgres://u:p@db:5432/app?sslmode=disable", 5))

	assert.Equal(t,
		"postgres://u:p@db:5432/app?connect_timeout=2",
		withConnectTimeout("postgres://u:p@db:5432/app?connect_timeout=2", 5))

	assert.Equal(t, "host=db user=u", withConnectTimeout("host=db user=u", 5))
	assert.Equal(t, "postgres://db/app", withConnectTimeout("postgres://db/app", 0))
}

func TestRedactedHost(t *testing.T) {
	assert.Equal(t, "db:5432/app", redactedHost("postgres://user:secret@db:5432/app?sslmode=disable"))
}
