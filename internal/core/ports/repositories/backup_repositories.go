package repositories

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// BackupRepository handles the legacy three-table backup format. The restore
// path clears and reloads students, payments and expenditures atomically;
// donations and assistance are not part of the format and are left untouched.
type BackupRepository interface {
	// RestoreTables replaces the contents of the three backed-up tables in a
	// single transaction. Nothing is written if any insert fails.
	RestoreTables(ctx context.Context, students []domain.Student, payments []domain.Payment, expenditures []domain.Expenditure) error
}
