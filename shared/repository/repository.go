package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/shared/constant"
	"ourstory/shared/dto"
	"ourstory/shared/logger"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository is the table gateway shared by every domain. T is a flat struct whose db tags name
// the table columns; the primary column is server generated on Insert and copied verbatim by
// InsertBulkTx.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scopeName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, method)
}

func (repo *Repository[T]) pool() (sqlx.ExtContext, error) {
	db, err := repo.db.DB()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return db, nil
}

func (repo *Repository[T]) insertColumns(withPrimary bool) []string {
	if withPrimary {
		return repo.columns
	}

	return slices.DeleteFunc(slices.Clone(repo.columns), func(col string) bool {
		return col == repo.primaryColumn
	})
}

func placeholders(columns []string) string {
	named := make([]string, len(columns))
	for i, col := range columns {
		named[i] = ":" + col
	}

	return strings.Join(named, ", ")
}

func (repo *Repository[T]) insert(ctx context.Context, exec sqlx.ExtContext, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("insert"))
	defer scope.End()

	var created T

	columns := repo.insertColumns(false)
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table, strings.Join(columns, ", "), placeholders(columns), strings.Join(repo.columns, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, args, err := exec.BindNamed(query, model)
	if err != nil {
		scope.TraceError(err)

		return created, fmt.Errorf("failed to bind insert (%s): %w", repo.entity, err)
	}

	if err = sqlx.GetContext(ctx, exec, &created, bound, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return created, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return created, nil
}

// Insert stores model with a server generated primary key and returns the stored row.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Insert"))
	defer scope.End()

	exec, err := repo.pool()
	if err != nil {
		var zero T

		return zero, err
	}

	return repo.insert(ctx, exec, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("InsertTx"))
	defer scope.End()

	return repo.insert(ctx, sqltx, model)
}

// InsertBulkTx writes every model in one statement, primary keys included.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("InsertBulkTx"))
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	return repo.insertBulk(ctx, sqltx, repo.insertColumns(true), models)
}

// InsertBulkGeneratedTx writes every model in one statement and lets the database assign keys.
func (repo *Repository[T]) InsertBulkGeneratedTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("InsertBulkGeneratedTx"))
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	return repo.insertBulk(ctx, sqltx, repo.insertColumns(false), models)
}

func (repo *Repository[T]) insertBulk(ctx context.Context, exec sqlx.ExtContext, columns []string, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("insertBulk"))
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(columns, ", "), placeholders(columns))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, args, err := exec.BindNamed(query, models)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to bind bulk insert (%s): %w", repo.entity, err)
	}

	if _, err = exec.ExecContext(ctx, bound, args...); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to bulk insert (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) exist(ctx context.Context, exec sqlx.ExtContext, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := exec.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to bind exist (%s): %w", repo.entity, err)
	}

	exist := false
	if err = sqlx.GetContext(ctx, exec, &exist, bound, boundArgs...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

// ExistTx reports whether any row matches filter; an empty filter matches any row.
func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("ExistTx"))
	defer scope.End()

	return repo.exist(ctx, sqltx, filter)
}

func (repo *Repository[T]) getAll(ctx context.Context, exec sqlx.ExtContext, sort dto.Sort, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("getAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s%s %s", strings.Join(repo.columns, ", "), repo.table, where, sort.Clause(repo.primaryColumn))
	query = strings.TrimSpace(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := exec.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to bind select (%s): %w", repo.entity, err)
	}

	models := []T{}
	if err = sqlx.SelectContext(ctx, exec, &models, bound, boundArgs...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

// GetAll returns every matching row in sort order, ties broken by the primary column.
func (repo *Repository[T]) GetAll(ctx context.Context, sort dto.Sort, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAll"))
	defer scope.End()

	exec, err := repo.pool()
	if err != nil {
		return nil, err
	}

	return repo.getAll(ctx, exec, sort, filter)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, sort dto.Sort, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("GetAllTx"))
	defer scope.End()

	return repo.getAll(ctx, sqltx, sort, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, exec sqlx.ExtContext, filter dto.FilterGroup, requireFilter bool) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("delete"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" && requireFilter {
		return 0, errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := exec.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bind delete (%s): %w", repo.entity, err)
	}

	result, err := exec.ExecContext(ctx, bound, boundArgs...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

// Delete removes the rows matching filter and reports how many were removed. An empty filter is refused.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Delete"))
	defer scope.End()

	exec, err := repo.pool()
	if err != nil {
		return 0, err
	}

	return repo.delete(ctx, exec, filter, true)
}

// DeleteAllTx empties the table.
func (repo *Repository[T]) DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("DeleteAllTx"))
	defer scope.End()

	_, err := repo.delete(ctx, sqltx, dto.FilterGroup{}, false)

	return err
}

func (repo *Repository[T]) updateQuery(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (string, map[string]any, error) {
	updateField := []string{}

	for _, col := range slices.Sorted(maps.Keys(mod)) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return "", nil, errRequiredFilter
	}

	maps.Copy(args, mod)

	return fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(updateField, ", "), where), args, nil
}

// Update overwrites the given columns and returns the updated row. found is false when no row matched.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (updated T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("Update"))
	defer scope.End()

	exec, err := repo.pool()
	if err != nil {
		return updated, false, err
	}

	query, args, err := repo.updateQuery(ctx, mod, filter)
	if err != nil {
		return updated, false, err
	}

	query = fmt.Sprintf("%s RETURNING %s", query, strings.Join(repo.columns, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := exec.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return updated, false, fmt.Errorf("failed to bind update (%s): %w", repo.entity, err)
	}

	err = sqlx.GetContext(ctx, exec, &updated, bound, boundArgs...)
	if errors.Is(err, sql.ErrNoRows) {
		return updated, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return updated, false, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	return updated, true, nil
}

// UpdateTx overwrites the given columns inside sqltx and reports how many rows changed.
func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("UpdateTx"))
	defer scope.End()

	query, args, err := repo.updateQuery(ctx, mod, filter)
	if err != nil {
		return 0, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := sqltx.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bind update (%s): %w", repo.entity, err)
	}

	result, err := sqltx.ExecContext(ctx, bound, boundArgs...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read updated rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

// ResetSequenceTx moves the primary key sequence past the highest stored key, required after rows
// were inserted with explicit keys. The sequence only moves forward: the next key is the larger of
// MAX(key)+1 and the value the sequence would have issued anyway, so keys handed out earlier are
// never issued again.
func (repo *Repository[T]) ResetSequenceTx(ctx context.Context, sqltx *sqlx.Tx) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("ResetSequenceTx"))
	defer scope.End()

	sequence := fmt.Sprintf("pg_get_serial_sequence('%s', '%s')", repo.table, repo.primaryColumn)
	query := fmt.Sprintf(
		"SELECT setval(%s, GREATEST(COALESCE(MAX(%s), 0) + 1, nextval(%s)), false) FROM %s",
		sequence, repo.primaryColumn, sequence, repo.table,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.ExecContext(ctx, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to reset sequence (%s): %w", repo.entity, err)
	}

	return nil
}

// LockTx takes a table lock that blocks concurrent writers until sqltx ends.
func (repo *Repository[T]) LockTx(ctx context.Context, sqltx *sqlx.Tx) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("LockTx"))
	defer scope.End()

	query := fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", repo.table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.ExecContext(ctx, query); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to lock table (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.scopeName("BuildWhereClause"))
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
