package dto

import (
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenditureRequest defines the data needed to record an expenditure.
type CreateExpenditureRequest struct {
	Date   string          `json:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

// UpdateExpenditureRequest defines the fields an expenditure edit may change.
type UpdateExpenditureRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason"`
}

// ExpenditureResponse is the API representation of an expenditure.
type ExpenditureResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Reason string `json:"reason"`
	Person string `json:"person"`
}

// ToExpenditureResponse converts a domain.Expenditure.
func ToExpenditureResponse(e *domain.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ID:     e.ID,
		Date:   e.Date,
		Amount: e.Amount.StringFixed(2),
		Reason: e.Reason,
		Person: e.Person,
	}
}

// ToExpenditureResponses converts a slice of expenditures.
func ToExpenditureResponses(es []domain.Expenditure) []ExpenditureResponse {
	out := make([]ExpenditureResponse, len(es))
	for i := range es {
		out[i] = ToExpenditureResponse(&es[i])
	}
	return out
}

// CreateDonationRequest defines the data needed to record a donation.
type CreateDonationRequest struct {
	Date      string          `json:"date" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	StudentID string          `json:"studentId" binding:"required"`
	Note      string          `json:"note"`
}

// UpdateDonationRequest defines the fields a donation edit may change.
type UpdateDonationRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}

// DonationResponse is the API representation of a donation.
type DonationResponse struct {
	ID        int64  `json:"id"`
	StudentID string `json:"studentId"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Note      string `json:"note"`
	Collector string `json:"collector"`
}

// ToDonationResponse converts a domain.Donation.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		ID:        d.ID,
		StudentID: d.StudentID,
		Amount:    d.Amount.StringFixed(2),
		Date:      d.Date,
		Note:      d.Note,
		Collector: d.Collector,
	}
}

// ToDonationResponses converts a slice of donations.
func ToDonationResponses(ds []domain.Donation) []DonationResponse {
	out := make([]DonationResponse, len(ds))
	for i := range ds {
		out[i] = ToDonationResponse(&ds[i])
	}
	return out
}

// CreateAssistanceRequest defines the data needed to record assistance.
type CreateAssistanceRequest struct {
	Date    string          `json:"date" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Purpose string          `json:"purpose" binding:"required"`
}

// UpdateAssistanceRequest defines the fields an assistance edit may change.
type UpdateAssistanceRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Purpose *string          `json:"purpose"`
}

// AssistanceResponse is the API representation of an assistance record.
type AssistanceResponse struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Purpose string `json:"purpose"`
	AddedBy string `json:"addedBy"`
}

// ToAssistanceResponse converts a domain.Assistance.
func ToAssistanceResponse(a *domain.Assistance) AssistanceResponse {
	return AssistanceResponse{
		ID:      a.ID,
		Date:    a.Date,
		Amount:  a.Amount.StringFixed(2),
		Purpose: a.Purpose,
		AddedBy: a.AddedBy,
	}
}

// ToAssistanceResponses converts a slice of assistance records.
func ToAssistanceResponses(as []domain.Assistance) []AssistanceResponse {
	out := make([]AssistanceResponse, len(as))
	for i := range as {
		out[i] = ToAssistanceResponse(&as[i])
	}
	return out
}
