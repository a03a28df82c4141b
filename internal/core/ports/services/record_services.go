package services

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

// PaymentSvcFacade defines operations on fee payments. The acting admin is
// always passed explicitly; nothing about the session is ambient.
type PaymentSvcFacade interface {
	// AddPayment records a payment against the student with internal id
	// studentID, dated today, copying the student's subject tags.
	AddPayment(ctx context.Context, studentID int64, req dto.CreatePaymentRequest, actor string) (*domain.Payment, error)

	// ListStudentPayments lists a student's payments for one term, optionally
	// narrowed to a subject tag.
	ListStudentPayments(ctx context.Context, studentID int64, term string, field string) ([]domain.Payment, error)

	GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// ExpenditureSvcFacade defines operations on expenditures.
type ExpenditureSvcFacade interface {
	// CreateExpenditure records an expenditure; the person defaults to actor.
	CreateExpenditure(ctx context.Context, req dto.CreateExpenditureRequest, actor string) (*domain.Expenditure, error)
	GetExpenditureByID(ctx context.Context, id int64) (*domain.Expenditure, error)
	ListExpenditures(ctx context.Context) ([]domain.Expenditure, error)
	UpdateExpenditure(ctx context.Context, id int64, req dto.UpdateExpenditureRequest) (*domain.Expenditure, error)
	DeleteExpenditure(ctx context.Context, id int64) error
}

// DonationSvcFacade defines operations on donations.
type DonationSvcFacade interface {
	// CreateDonation records a donation; the collector is the acting admin.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest, actor string) (*domain.Donation, error)
	GetDonationByID(ctx context.Context, id int64) (*domain.Donation, error)
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	UpdateDonation(ctx context.Context, id int64, req dto.UpdateDonationRequest) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, id int64) error
}

// AssistanceSvcFacade defines operations on financial assistance records.
type AssistanceSvcFacade interface {
	// CreateAssistance records assistance given out; addedBy is the acting admin.
	CreateAssistance(ctx context.Context, req dto.CreateAssistanceRequest, actor string) (*domain.Assistance, error)
	GetAssistanceByID(ctx context.Context, id int64) (*domain.Assistance, error)
	ListAssistance(ctx context.Context) ([]domain.Assistance, error)
	UpdateAssistance(ctx context.Context, id int64, req dto.UpdateAssistanceRequest) (*domain.Assistance, error)
	DeleteAssistance(ctx context.Context, id int64) error
}
