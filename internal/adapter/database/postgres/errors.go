package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UniqueViolation reports the column behind a unique constraint failure,
// derived from the default constraint names (users_pkey, users_email_key).
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError

	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return "", false
	}

	constraint := strings.TrimPrefix(pgErr.ConstraintName, pgErr.TableName+"_")

	switch {
	case constraint == "pkey":
		return "id", true
	case strings.HasSuffix(constraint, "_key"):
		return strings.TrimSuffix(constraint, "_key"), true
	default:
		return constraint, true
	}
}
