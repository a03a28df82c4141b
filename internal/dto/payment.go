package dto

import (
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a fee payment.
// The date is stamped server-side; the student's subject tags are copied in.
type CreatePaymentRequest struct {
	Term      string          `json:"term" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Note      string          `json:"note"`
	Collector string          `json:"collector" binding:"required"`
}

// UpdatePaymentRequest defines the fields an amount/note edit may change.
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}

// ListStudentPaymentsParams narrows a student's payment history.
type ListStudentPaymentsParams struct {
	Term  string `form:"term" binding:"required"`
	Field string `form:"field"`
}

// PaymentResponse is the API representation of a payment.
type PaymentResponse struct {
	ID        int64    `json:"id"`
	StudentID string   `json:"studentId"`
	Term      string   `json:"term"`
	Amount    string   `json:"amount"`
	Date      string   `json:"date"`
	Note      string   `json:"note"`
	Collector string   `json:"collector"`
	Field     []string `json:"field"`
}

// ToPaymentResponse converts a domain.Payment to its API representation.
// Amounts are rendered with the two-decimal display contract.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	fields := make([]string, len(p.Field))
	for i, f := range p.Field {
		fields[i] = string(f)
	}
	return PaymentResponse{
		ID:        p.ID,
		StudentID: p.StudentID,
		Term:      string(p.Term),
		Amount:    p.Amount.StringFixed(2),
		Date:      p.Date,
		Note:      p.Note,
		Collector: p.Collector,
		Field:     fields,
	}
}

// ToPaymentResponses converts a slice of payments.
func ToPaymentResponses(ps []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(ps))
	for i := range ps {
		out[i] = ToPaymentResponse(&ps[i])
	}
	return out
}
