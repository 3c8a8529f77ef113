package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsNoRows reports pgx.ErrNoRows through any wrapping.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
