package sqlite

import (
	"database/sql"

	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository over a shared
// connection pool.
func NewRepositoryProvider(db *sql.DB) *portrepo.RepositoryProvider {
	return &portrepo.RepositoryProvider{
		StudentRepo:     NewStudentRepository(db),
		PaymentRepo:     NewPaymentRepository(db),
		ExpenditureRepo: NewExpenditureRepository(db),
		DonationRepo:    NewDonationRepository(db),
		AssistanceRepo:  NewAssistanceRepository(db),
		AdminRepo:       NewAdminRepository(db),
		BackupRepo:      NewBackupRepository(db),
	}
}
