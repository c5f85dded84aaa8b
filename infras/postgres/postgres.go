package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"ourstory/config"
	"ourstory/shared/failure"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"
)

// Transactor runs fn inside one transaction on one pooled connection. The transaction is
// committed when fn returns nil and rolled back otherwise, so the connection is always released.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Connection is the process-scoped pool. It may be empty when the database could not be reached
// at startup; every accessor then fails with failure.ErrDatabaseUnavailable.
type Connection struct {
	db *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{db: CreatePostgresConnection(config)}
}

// NewFromDB wraps an existing handle, tests use it with sqlmock.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{db: db}
}

// DB returns the pool or failure.ErrDatabaseUnavailable.
func (c *Connection) DB() (*sqlx.DB, error) {
	if c == nil || c.db == nil {
		return nil, failure.ErrDatabaseUnavailable
	}

	return c.db, nil
}

func (c *Connection) Available() bool {
	return c != nil && c.db != nil
}

func (c *Connection) Ping(ctx context.Context) error {
	db, err := c.DB()
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	db, err := c.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	if !c.Available() {
		return
	}

	if err := c.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database pool")

		return
	}

	log.Info().Msg("Database pool closed")
}

// withConnectTimeout adds lib/pq's connect_timeout unless the URL already carries one.
func withConnectTimeout(dsn string, seconds int) string {
	if seconds <= 0 {
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return dsn
	}

	query := parsed.Query()
	if query.Get("connect_timeout") == "" {
		query.Set("connect_timeout", strconv.Itoa(seconds))
	}

	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// redactedHost is the part of the DSN that is safe to log.
func redactedHost(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return "unknown"
	}

	return parsed.Host + parsed.Path
}

// CreatePostgresConnection opens the bounded pool, retrying up to MaxRetry times. It returns nil
// when every attempt failed.
func CreatePostgresConnection(config *config.Config) *sqlx.DB {
	pg := config.DB.Postgres
	descriptor := withConnectTimeout(pg.URL, pg.ConnectTimeoutSeconds)
	target := redactedHost(pg.URL)

	maxRetry := max(pg.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("target", target).
				Int("maxOpenConnections", pg.MaxOpenConnections).
				Msg("Connected to database")
			sqlDB.SetMaxOpenConns(pg.MaxOpenConnections)
			sqlDB.SetMaxIdleConns(pg.MaxOpenConnections)
			sqlDB.SetConnMaxIdleTime(time.Duration(pg.IdleTimeoutSeconds) * time.Second)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("target", target).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	return nil
}
