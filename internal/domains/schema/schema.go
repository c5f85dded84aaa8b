// Package schema prepares the database before the HTTP listener starts.
package schema

import (
	"context"
	"fmt"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	taskService "ourstory/internal/domains/task/service"
	"ourstory/migrations"
	"ourstory/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Manager interface {
	Ensure(ctx context.Context) error
}

type managerImpl struct {
	db    *postgres.Connection
	tasks taskService.Task
	otel  otel.Otel
}

func New(db *postgres.Connection, tasks taskService.Task, otel otel.Otel) Manager {
	return &managerImpl{
		db:    db,
		tasks: tasks,
		otel:  otel,
	}
}

// Ensure creates missing tables and seeds the default tasks into an empty list. It is safe to run
// on every start and never drops or rewrites existing rows.
func (m *managerImpl) Ensure(ctx context.Context) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelSchemaScopeName, constant.OtelSchemaScopeName+".Ensure")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	db, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	for _, file := range migrations.Startup {
		ddl, err := migrations.Postgres.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read schema %s: %w", file, err)
		}

		scope.AddEvent(file)

		if _, err = db.ExecContext(ctx, string(ddl)); err != nil {
			return fmt.Errorf("failed to apply schema %s: %w", file, err)
		}
	}

	err = m.db.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		seeded, err := m.tasks.SeedTx(ctx, sqltx)
		if err != nil {
			return fmt.Errorf("failed to seed default tasks: %w", err)
		}

		if seeded {
			scope.AddEvent("default tasks seeded")
			log.Info().Msg("Seeded default tasks")
		}

		return nil
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Msg("Database schema ready")

	return nil
}
