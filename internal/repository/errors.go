package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, SQLite "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// violatesColumn reports whether a unique violation message names column. Postgres
// reports the index (idx_accounts_email), SQLite the column (accounts.email).
func violatesColumn(err error, column string) bool {
	return isUniqueConstraintError(err) && strings.Contains(strings.ToLower(err.Error()), column)
}
