package dto

import (
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// ReportParams selects the period for the report view and export.
// Month is 0-based (January is 0), as the browser UI submits it, and is
// only read for period=byMonth.
type ReportParams struct {
	Period string `form:"period,default=today"`
	Month  int    `form:"month"`
	Year   int    `form:"year"`
}

// ReportTotalsResponse is the totals block with two-decimal display strings.
type ReportTotalsResponse struct {
	Collected    string `json:"collected"`
	Expenditures string `json:"expenditures"`
	Donations    string `json:"donations"`
	Assistance   string `json:"assistance"`
	Net          string `json:"net"`
}

// ReportResponse is the filtered period view returned to the report page.
type ReportResponse struct {
	Period       string                `json:"period"`
	PeriodLabel  string                `json:"periodLabel"`
	Payments     []PaymentResponse     `json:"payments"`
	Expenditures []ExpenditureResponse `json:"expenditures"`
	Donations    []DonationResponse    `json:"donations"`
	Assistance   []AssistanceResponse  `json:"assistance"`
	Totals       ReportTotalsResponse  `json:"totals"`
}

// ToReportResponse converts a domain.Report to its API representation.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		Period:       string(r.Period.Kind),
		PeriodLabel:  r.Period.Label(),
		Payments:     ToPaymentResponses(r.Payments),
		Expenditures: ToExpenditureResponses(r.Expenditures),
		Donations:    ToDonationResponses(r.Donations),
		Assistance:   ToAssistanceResponses(r.Assistance),
		Totals: ReportTotalsResponse{
			Collected:    r.Totals.Collected.StringFixed(2),
			Expenditures: r.Totals.Expenditures.StringFixed(2),
			Donations:    r.Totals.Donations.StringFixed(2),
			Assistance:   r.Totals.Assistance.StringFixed(2),
			Net:          r.Totals.Net.StringFixed(2),
		},
	}
}

// ExportedDocument is a generated PDF, already written under the export
// directory, returned to the handler for download.
type ExportedDocument struct {
	FileName string
	Path     string
	Data     []byte
}
