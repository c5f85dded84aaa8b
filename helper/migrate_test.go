package helper

import (
	"io/fs"
	"testing"

	"ourstory/config"
	"ourstory/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.URL = "postgres://u:p@db:5432/ourstory?sslmode=disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	got, err := migrationURL(cfg)

	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/ourstory?sslmode=disable&x-migrations-table=schema_migrations", got)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	names, err := fs.Glob(migrations.Postgres, migrations.PostgresDir+"/*.sql")
	require.NoError(t, err)

	assert.Contains(t, names, "postgres/000001_create_tasks_and_journal.up.sql")
	assert.Contains(t, names, "postgres/000001_create_tasks_and_journal.down.sql")
	assert.Len(t, names, 2)
}
