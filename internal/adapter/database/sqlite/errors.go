package sqlite

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// UniqueViolation reports the column behind a UNIQUE or PRIMARY KEY
// constraint failure, e.g. "email" for "UNIQUE constraint failed: users.email".
func UniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error

	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return "", false
	}

	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique && sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return "", false
	}

	message := sqliteErr.Error()
	column := message[strings.LastIndex(message, ".")+1:]

	return strings.TrimSpace(column), true
}
