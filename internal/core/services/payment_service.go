package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo portrepo.PaymentRepository
	studentRepo portrepo.StudentRepository
	now         func() time.Time
}

// PaymentServiceOption customizes a payment service.
type PaymentServiceOption func(*paymentService)

// WithPaymentClock overrides the wall clock used to stamp payment dates.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) { s.now = now }
}

// NewPaymentService creates the fee payment service.
func NewPaymentService(paymentRepo portrepo.PaymentRepository, studentRepo portrepo.StudentRepository, opts ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPayment records a payment against the student with internal id
// studentID. The date is stamped with today and the student's subject tags
// are copied onto the payment so later edits to the student do not rewrite
// payment history.
func (s *paymentService) AddPayment(ctx context.Context, studentID int64, req dto.CreatePaymentRequest, actor string) (*domain.Payment, error) {
	if !domain.IsValidTerm(req.Term) {
		return nil, fmt.Errorf("unknown term %q: %w", req.Term, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{
		StudentID: student.StudentID,
		Term:      domain.Term(req.Term),
		Amount:    req.Amount,
		Date:      domain.FormatDMY(s.now()),
		Note:      req.Note,
		Collector: req.Collector,
		Field:     append([]domain.FieldTag(nil), student.Field...),
	}

	id, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "failed to save payment", slog.String("student_code", student.StudentID))
		return nil, err
	}
	payment.ID = id
	s.LogInfo(ctx, "payment recorded",
		slog.Int64("id", id),
		slog.String("student_code", student.StudentID),
		slog.String("amount", payment.Amount.StringFixed(2)),
		slog.String("recorded_by", actor))
	return &payment, nil
}

func (s *paymentService) ListStudentPayments(ctx context.Context, studentID int64, term string, field string) ([]domain.Payment, error) {
	if !domain.IsValidTerm(term) {
		return nil, fmt.Errorf("unknown term %q: %w", term, apperrors.ErrValidation)
	}
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByStudent(ctx, student.StudentID, domain.Term(term))
	if err != nil {
		s.LogError(ctx, err, "failed to list payments", slog.String("student_code", student.StudentID))
		return nil, err
	}
	if field == "" {
		return payments, nil
	}
	want := domain.FieldTag(field)
	narrowed := payments[:0:0]
	for _, p := range payments {
		if hasFieldTag(p.Field, want) {
			narrowed = append(narrowed, p)
		}
	}
	return narrowed, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, id)
}

func (s *paymentService) UpdatePayment(ctx context.Context, id int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		payment.Amount = *req.Amount
	}
	if req.Note != nil {
		payment.Note = *req.Note
	}
	if err := s.paymentRepo.UpdatePayment(ctx, id, *payment); err != nil {
		s.LogError(ctx, err, "failed to update payment", slog.Int64("id", id))
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id int64) error {
	if err := s.paymentRepo.DeletePayment(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "payment deleted", slog.Int64("id", id))
	return nil
}
