package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
)

type backupRepository struct {
	db *sql.DB
}

// NewBackupRepository creates a SQLite-backed backup repository.
func NewBackupRepository(db *sql.DB) portrepo.BackupRepository {
	return &backupRepository{db: db}
}

// RestoreTables replaces the students, payments and expenditures tables with
// the given snapshot inside a single transaction. Donations and assistance
// are left untouched.
func (r *backupRepository) RestoreTables(ctx context.Context, students []domain.Student, payments []domain.Payment, expenditures []domain.Expenditure) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"payments", "expenditures", "students"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, s := range students {
		m, err := studentToModel(s)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO students (id, student_id, name, father_guardian, contact, whatsapp, email, address, academic_school, admission_date, year, field, photo, signature)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.StudentID, m.Name, m.FatherGuardian, m.Contact, m.Whatsapp, m.Email,
			m.Address, m.AcademicSchool, m.AdmissionDate, m.Year, m.Field, m.Photo, m.Signature); err != nil {
			return fmt.Errorf("restore student %s: %w", s.StudentID, err)
		}
	}

	for _, p := range payments {
		m, err := paymentToModel(p)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (id, student_id, term, amount, date, note, collector, field)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.StudentID, m.Term, m.Amount, m.Date, m.Note, m.Collector, m.Field); err != nil {
			return fmt.Errorf("restore payment %d: %w", p.ID, err)
		}
	}

	for _, e := range expenditures {
		m := expenditureToModel(e)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO expenditures (id, date, amount, reason, person) VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.Date, m.Amount, m.Reason, m.Person); err != nil {
			return fmt.Errorf("restore expenditure %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore transaction: %w", err)
	}
	return nil
}
