package repositories

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// PaymentRepository defines persistence operations for fee payments.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)
	FindPaymentByID(ctx context.Context, id int64) (*domain.Payment, error)
	// ListPayments returns the full payments table in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	// ListPaymentsByStudent returns payments for one student code and term.
	ListPaymentsByStudent(ctx context.Context, studentID string, term domain.Term) ([]domain.Payment, error)
	// UpdatePayment updates amount and note of an existing payment.
	UpdatePayment(ctx context.Context, id int64, payment domain.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

// ExpenditureRepository defines persistence operations for expenditures.
type ExpenditureRepository interface {
	SaveExpenditure(ctx context.Context, exp domain.Expenditure) (int64, error)
	FindExpenditureByID(ctx context.Context, id int64) (*domain.Expenditure, error)
	ListExpenditures(ctx context.Context) ([]domain.Expenditure, error)
	UpdateExpenditure(ctx context.Context, id int64, exp domain.Expenditure) error
	DeleteExpenditure(ctx context.Context, id int64) error
}

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	SaveDonation(ctx context.Context, don domain.Donation) (int64, error)
	FindDonationByID(ctx context.Context, id int64) (*domain.Donation, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	UpdateDonation(ctx context.Context, id int64, don domain.Donation) error
	DeleteDonation(ctx context.Context, id int64) error
}

// AssistanceRepository defines persistence operations for financial assistance.
type AssistanceRepository interface {
	SaveAssistance(ctx context.Context, a domain.Assistance) (int64, error)
	FindAssistanceByID(ctx context.Context, id int64) (*domain.Assistance, error)
	ListAssistance(ctx context.Context) ([]domain.Assistance, error)
	UpdateAssistance(ctx context.Context, id int64, a domain.Assistance) error
	DeleteAssistance(ctx context.Context, id int64) error
}
