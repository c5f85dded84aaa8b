// Package migrations embeds the SQL schema. The same files feed the migrate CLI and the startup
// schema check, so both must stay idempotent.
package migrations

import "embed"

// Postgres holds the numbered migrations under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"

// Startup lists the up migrations executed, in order, on every start. Ids are BIGINT on both
// tables; the second file widens tables created while they were still INTEGER.
var Startup = []string{
	"postgres/000001_create_tasks_and_journal.up.sql",
	"postgres/000002_widen_ids.up.sql",
}
