package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/utils"
)

// ReportFileName returns the export name, e.g. "report-today-05-03-2026.pdf".
func ReportFileName(p domain.Period, generatedOn time.Time) string {
	return fmt.Sprintf("report-%s-%s.pdf", p.Slug(), domain.FormatDMY(generatedOn))
}

const (
	reportPageWidth  = 210.0
	reportPageHeight = 297.0
	reportMargin     = 14.0
	reportRowHeight  = 8.0
)

type reportTable struct {
	title   string
	headers []string
	widths  []float64
	rows    [][]string
}

// BuildReport renders the filtered period report as a paginated A4 PDF.
// Sections with no records are omitted entirely; the summary block always
// renders.
func BuildReport(report *domain.Report, generatedOn time.Time) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(reportMargin, reportMargin, reportMargin)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Collection Report", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "View: "+report.Period.Label(), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, "Generated on "+domain.FormatDMY(generatedOn), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, table := range reportTables(report) {
		if len(table.rows) == 0 {
			continue
		}
		renderReportTable(doc, table)
	}

	renderReportSummary(doc, report.Totals)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// reportTables lays the four record collections out in the fixed section
// order the report page uses.
func reportTables(report *domain.Report) []reportTable {
	usable := reportPageWidth - 2*reportMargin

	payments := reportTable{
		title:   "Payments",
		headers: []string{"Date", "Student", "Term", "Subjects", "Collector", "Amount"},
		widths:  []float64{26, 34, 34, 34, 26, usable - 154},
	}
	for _, p := range report.Payments {
		payments.rows = append(payments.rows, []string{
			p.Date, p.StudentID, string(p.Term), joinTags(p.Field), p.Collector, utils.FormatRupees(p.Amount),
		})
	}

	expenditures := reportTable{
		title:   "Expenditures",
		headers: []string{"Date", "Reason", "Person", "Amount"},
		widths:  []float64{26, usable - 26 - 36 - 30, 36, 30},
	}
	for _, e := range report.Expenditures {
		expenditures.rows = append(expenditures.rows, []string{
			e.Date, e.Reason, e.Person, utils.FormatRupees(e.Amount),
		})
	}

	donations := reportTable{
		title:   "Donations",
		headers: []string{"Date", "Student", "Note", "Collector", "Amount"},
		widths:  []float64{26, 34, usable - 26 - 34 - 36 - 30, 36, 30},
	}
	for _, d := range report.Donations {
		donations.rows = append(donations.rows, []string{
			d.Date, d.StudentID, d.Note, d.Collector, utils.FormatRupees(d.Amount),
		})
	}

	assistance := reportTable{
		title:   "Financial Assistance",
		headers: []string{"Date", "Purpose", "Added By", "Amount"},
		widths:  []float64{26, usable - 26 - 36 - 30, 36, 30},
	}
	for _, a := range report.Assistance {
		assistance.rows = append(assistance.rows, []string{
			a.Date, a.Purpose, a.AddedBy, utils.FormatRupees(a.Amount),
		})
	}

	return []reportTable{payments, expenditures, donations, assistance}
}

func joinTags(tags []domain.FieldTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func ensureRoom(doc *gofpdf.Fpdf, needed float64) {
	if doc.GetY()+needed > reportPageHeight-reportMargin {
		doc.AddPage()
	}
}

func renderReportTable(doc *gofpdf.Fpdf, table reportTable) {
	ensureRoom(doc, 3*reportRowHeight)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, reportRowHeight, table.title, "", 1, "L", false, 0, "")

	renderHeaderRow(doc, table)
	doc.SetFont("Helvetica", "", 9)
	for _, row := range table.rows {
		if doc.GetY()+reportRowHeight > reportPageHeight-reportMargin {
			doc.AddPage()
			renderHeaderRow(doc, table)
			doc.SetFont("Helvetica", "", 9)
		}
		for i, cell := range row {
			align := "L"
			if i == len(row)-1 {
				align = "R"
			}
			doc.CellFormat(table.widths[i], reportRowHeight, cell, "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(4)
}

func renderHeaderRow(doc *gofpdf.Fpdf, table reportTable) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(235, 235, 235)
	for i, h := range table.headers {
		doc.CellFormat(table.widths[i], reportRowHeight, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)
}

func renderReportSummary(doc *gofpdf.Fpdf, totals domain.ReportTotals) {
	ensureRoom(doc, 6*reportRowHeight)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, reportRowHeight, "Summary", "", 1, "L", false, 0, "")

	rows := []struct {
		label string
		value string
	}{
		{"Total Collected", utils.FormatRupees(totals.Collected)},
		{"Total Expenditures", utils.FormatRupees(totals.Expenditures)},
		{"Total Donations", utils.FormatRupees(totals.Donations)},
		{"Total Financial Assistance", utils.FormatRupees(totals.Assistance)},
		{"Net Balance", utils.FormatRupees(totals.Net)},
	}
	labelWidth := 90.0
	valueWidth := 50.0
	for i, row := range rows {
		if i == len(rows)-1 {
			doc.SetFont("Helvetica", "B", 10)
		} else {
			doc.SetFont("Helvetica", "", 10)
		}
		doc.CellFormat(labelWidth, reportRowHeight, row.label, "1", 0, "L", false, 0, "")
		doc.CellFormat(valueWidth, reportRowHeight, row.value, "1", 1, "R", false, 0, "")
	}
}
