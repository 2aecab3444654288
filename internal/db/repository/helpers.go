// Package repository implements domain repository interfaces using SQLite.
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// notFoundMessage returns the canonical client-facing message for a missing
// resource. It must match the message ownership checks use for foreign
// resources, so "absent" and "not yours" responses are byte-identical.
func notFoundMessage(code string) string {
	switch code {
	case domain.CodeUserNotFound:
		return "user does not exists"
	case domain.CodeChildNotFound:
		return "child does not exists"
	case domain.CodeMealNotFound:
		return "meal does not exists"
	default:
		return "resource not found"
	}
}

// requireAffected converts a zero-row UPDATE into a typed not-found error.
func requireAffected(res sql.Result, code string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound(code, "%s", notFoundMessage(code))
	}
	return nil
}

func mapDBError(code string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound(code, "%s", notFoundMessage(code))
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrConflict(domain.CodeUserAlreadyExists, "user already exists")
	}
	return err
}
