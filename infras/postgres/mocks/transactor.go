package mocks

import (
	"context"

	"ourstory/infras/postgres"

	"github.com/jmoiron/sqlx"
)

// Transactor runs fn without a database. Err, when set, is returned before fn runs.
type Transactor struct {
	Err   error
	Calls int
}

// WithTransaction implements postgres.Transactor.
func (t *Transactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	t.Calls++

	if t.Err != nil {
		return t.Err
	}

	return fn(nil)
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

var _ postgres.Transactor = (*Transactor)(nil)
