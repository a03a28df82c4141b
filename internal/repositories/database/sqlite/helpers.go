package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
)

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure. modernc.org/sqlite does not export a typed error for this, so the
// message is inspected.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// requireRowAffected converts a zero-row write into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
