package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type backupService struct {
	BaseService
	studentRepo     portrepo.StudentRepository
	paymentRepo     portrepo.PaymentRepository
	expenditureRepo portrepo.ExpenditureRepository
	backupRepo      portrepo.BackupRepository
	now             func() time.Time
}

// BackupServiceOption customizes a backup service.
type BackupServiceOption func(*backupService)

// WithBackupClock overrides the wall clock stamped into exports.
func WithBackupClock(now func() time.Time) BackupServiceOption {
	return func(s *backupService) { s.now = now }
}

// NewBackupService creates the backup export/restore service.
func NewBackupService(
	studentRepo portrepo.StudentRepository,
	paymentRepo portrepo.PaymentRepository,
	expenditureRepo portrepo.ExpenditureRepository,
	backupRepo portrepo.BackupRepository,
	opts ...BackupServiceOption,
) portssvc.BackupSvcFacade {
	s := &backupService{
		studentRepo:     studentRepo,
		paymentRepo:     paymentRepo,
		expenditureRepo: expenditureRepo,
		backupRepo:      backupRepo,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExportBackup snapshots students, payments and expenditures into the legacy
// backup shape.
func (s *backupService) ExportBackup(ctx context.Context) (*dto.BackupDocument, error) {
	students, err := s.studentRepo.ListStudents(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to snapshot students")
		return nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to snapshot payments")
		return nil, err
	}
	expenditures, err := s.expenditureRepo.ListExpenditures(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to snapshot expenditures")
		return nil, err
	}
	if students == nil {
		students = []domain.Student{}
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	if expenditures == nil {
		expenditures = []domain.Expenditure{}
	}
	return &dto.BackupDocument{
		Timestamp:    s.now(),
		Students:     students,
		Payments:     payments,
		Expenditures: expenditures,
	}, nil
}

// RestoreBackup validates the document shape before touching the database,
// then replaces the three backed-up tables in one transaction. Donations and
// assistance records survive a restore untouched.
func (s *backupService) RestoreBackup(ctx context.Context, raw []byte) error {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return fmt.Errorf("backup is not a JSON object: %w", apperrors.ErrMalformedBackup)
	}
	for _, key := range []string{"students", "payments", "expenditures"} {
		if _, ok := shape[key]; !ok {
			return fmt.Errorf("backup missing %q: %w", key, apperrors.ErrMalformedBackup)
		}
	}

	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("backup does not decode: %w", apperrors.ErrMalformedBackup)
	}

	if err := s.backupRepo.RestoreTables(ctx, doc.Students, doc.Payments, doc.Expenditures); err != nil {
		s.LogError(ctx, err, "failed to restore backup")
		return err
	}
	s.LogInfo(ctx, "backup restored",
		slog.Int("students", len(doc.Students)),
		slog.Int("payments", len(doc.Payments)),
		slog.Int("expenditures", len(doc.Expenditures)))
	return nil
}
