package pdf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/pdf"
)

func TestReportFileName(t *testing.T) {
	generated := time.Date(2024, 6, 20, 15, 0, 0, 0, time.Local)

	assert.Equal(t, "report-today-20-06-2024.pdf",
		pdf.ReportFileName(domain.Period{Kind: domain.PeriodToday}, generated))
	assert.Equal(t, "report-byMonth-20-06-2024.pdf",
		pdf.ReportFileName(domain.Period{Kind: domain.PeriodByMonth, Month: 5, Year: 2024}, generated))
}

func sampleReport() *domain.Report {
	report := &domain.Report{
		Period: domain.Period{Kind: domain.PeriodMonth},
		Payments: []domain.Payment{
			{ID: 1, StudentID: "S-1", Term: domain.TermAdya, Amount: decimal.NewFromInt(500), Date: "15-06-2024", Collector: "kabitalok", Field: []domain.FieldTag{domain.FieldSinging}},
		},
		Expenditures: []domain.Expenditure{
			{ID: 1, Date: "16-06-2024", Amount: decimal.NewFromInt(200), Reason: "Hall rent", Person: "kabitalok"},
		},
	}
	report.Totals = domain.ComputeTotals(report.Payments, report.Expenditures, report.Donations, report.Assistance)
	return report
}

func TestBuildReport(t *testing.T) {
	data, err := pdf.BuildReport(sampleReport(), time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}

func TestBuildReport_EmptySectionsStillRenderSummary(t *testing.T) {
	report := &domain.Report{Period: domain.Period{Kind: domain.PeriodAll}}
	report.Totals = domain.ComputeTotals(nil, nil, nil, nil)

	data, err := pdf.BuildReport(report, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuildReport_ManyRowsPaginate(t *testing.T) {
	report := sampleReport()
	for i := 0; i < 80; i++ {
		report.Payments = append(report.Payments, domain.Payment{
			ID: int64(i + 2), StudentID: "S-2", Term: domain.TermMadhya,
			Amount: decimal.NewFromInt(100), Date: "10-06-2024", Collector: "kabitalok",
		})
	}
	report.Totals = domain.ComputeTotals(report.Payments, report.Expenditures, report.Donations, report.Assistance)

	data, err := pdf.BuildReport(report, time.Now())
	require.NoError(t, err)
	// more than one page object in the document
	assert.Greater(t, strings.Count(string(data), "/Type /Page"), 1)
}
