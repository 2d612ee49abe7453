package postgres

import (
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juju/errors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver errors onto error kinds understood by services.
func translateError(err error, table string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFound(err, table)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.NewAlreadyExists(err, table+": "+pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return errors.NewNotValid(err, table+": "+pgErr.ConstraintName)
		}
	}
	return err
}
