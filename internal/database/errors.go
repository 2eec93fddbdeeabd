package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintNotNull
	ConstraintCheck
)

// ClassifyConstraint inspects driver errors from lib/pq, pgx and modernc sqlite.
func ClassifyConstraint(err error) ConstraintKind {
	if err == nil {
		return ConstraintNone
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ConstraintUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ConstraintForeignKey
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return ConstraintNotNull
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return ConstraintCheck
		}
	}

	return ConstraintNone
}

func fromSQLState(code string) ConstraintKind {
	switch code {
	case pgUniqueViolation:
		return ConstraintUnique
	case pgForeignKeyViolation:
		return ConstraintForeignKey
	case pgNotNullViolation:
		return ConstraintNotNull
	case pgCheckViolation:
		return ConstraintCheck
	}
	return ConstraintNone
}
