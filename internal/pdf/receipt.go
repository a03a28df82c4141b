package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/kabitalok/kabitalok-payments/internal/utils"
)

// ReceiptKind selects the receipt variant. Each variant has its own serial
// prefix and detail rows but shares one thermal-printer layout.
type ReceiptKind string

const (
	ReceiptPayment     ReceiptKind = "payment"
	ReceiptExpenditure ReceiptKind = "expenditure"
	ReceiptDonation    ReceiptKind = "donation"
	ReceiptAssistance  ReceiptKind = "assistance"
)

type receiptSpec struct {
	title  string
	prefix string
}

var receiptSpecs = map[ReceiptKind]receiptSpec{
	ReceiptPayment:     {title: "Payment Receipt", prefix: "R"},
	ReceiptExpenditure: {title: "Expenditure Receipt", prefix: "E"},
	ReceiptDonation:    {title: "Donation Receipt", prefix: "D"},
	ReceiptAssistance:  {title: "Assistance Receipt", prefix: "A"},
}

// Detail is one label/value row on a receipt.
type Detail struct {
	Label string
	Value string
}

// Receipt holds everything needed to render one printable receipt.
// PartyName, Note and Logo may be empty.
type Receipt struct {
	Kind      ReceiptKind
	ID        int64
	Date      string
	Amount    decimal.Decimal
	PartyName string
	Details   []Detail
	Note      string
	Logo      []byte
}

// Number returns the human-readable receipt serial, e.g. "R-42".
func (r Receipt) Number() string {
	return fmt.Sprintf("%s-%d", receiptSpecs[r.Kind].prefix, r.ID)
}

// FileName returns the download name, e.g. "payment-R-42-Asha Roy.pdf".
// The party name segment is dropped when empty.
func (r Receipt) FileName() string {
	if r.PartyName == "" {
		return fmt.Sprintf("%s-%s.pdf", r.Kind, r.Number())
	}
	return fmt.Sprintf("%s-%s-%s.pdf", r.Kind, r.Number(), r.PartyName)
}

// Receipts print on 80mm-class roll paper scaled up: the page is a fixed
// 245mm wide and exactly as tall as the content it carries, measured before
// the real render.
const (
	receiptWidth  = 245.0
	receiptMargin = 12.0
	lineHeight    = 7.0
	// bottom padding below the signature row
	signatureAllowance = 10.0
)

// BuildReceipt renders a receipt to PDF bytes. The render is pure: the same
// receipt always produces the same layout.
func BuildReceipt(r Receipt) ([]byte, error) {
	if _, ok := receiptSpecs[r.Kind]; !ok {
		return nil, fmt.Errorf("unknown receipt kind %q", r.Kind)
	}

	height := measureReceiptHeight(r)

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: receiptWidth, Ht: height},
	})
	doc.SetMargins(receiptMargin, receiptMargin, receiptMargin)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	renderReceipt(doc, r)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// measureReceiptHeight runs the layout against a throwaway document to find
// how tall the page must be. A long note wraps and grows the page instead of
// clipping.
func measureReceiptHeight(r Receipt) float64 {
	probe := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: receiptWidth, Ht: 1000},
	})
	probe.SetMargins(receiptMargin, receiptMargin, receiptMargin)
	probe.SetAutoPageBreak(false, 0)
	probe.AddPage()

	renderReceipt(probe, r)
	return probe.GetY() + signatureAllowance
}

func renderReceipt(doc *gofpdf.Fpdf, r Receipt) {
	spec := receiptSpecs[r.Kind]
	usable := receiptWidth - 2*receiptMargin

	if len(r.Logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "JPEG", ReadDpi: true}
		doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(r.Logo))
		doc.ImageOptions("logo", receiptMargin, doc.GetY(), 24, 0, false, opts, 0, "")
		doc.SetY(doc.GetY() + 4)
	}

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(usable, lineHeight+2, "Kabitalok", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(usable, lineHeight-1, spec.title, "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	half := usable / 2
	doc.CellFormat(half, lineHeight, "Receipt No: "+r.Number(), "", 0, "L", false, 0, "")
	doc.CellFormat(half, lineHeight, "Date: "+r.Date, "", 1, "R", false, 0, "")
	doc.Line(receiptMargin, doc.GetY()+1, receiptWidth-receiptMargin, doc.GetY()+1)
	doc.Ln(3)

	for _, d := range r.Details {
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(half, lineHeight, d.Label, "", 0, "L", false, 0, "")
		doc.CellFormat(half, lineHeight, d.Value, "", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(half, lineHeight+1, "Amount", "", 0, "L", false, 0, "")
	doc.CellFormat(half, lineHeight+1, utils.FormatRupees(r.Amount), "", 1, "R", false, 0, "")

	if r.Note != "" {
		doc.Ln(2)
		doc.SetFont("Helvetica", "I", 10)
		lines := doc.SplitText("Note: "+r.Note, usable)
		for _, line := range lines {
			doc.CellFormat(usable, lineHeight-1, line, "", 1, "L", false, 0, "")
		}
	}

	doc.Ln(3)
	doc.Line(receiptMargin, doc.GetY(), receiptWidth-receiptMargin, doc.GetY())
	doc.Ln(12)

	left, right := signatureLabels(r.Kind)
	sigWidth := usable/2 - 10
	y := doc.GetY()
	doc.Line(receiptMargin, y, receiptMargin+sigWidth, y)
	doc.Line(receiptWidth-receiptMargin-sigWidth, y, receiptWidth-receiptMargin, y)
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(usable/2, lineHeight-2, left, "", 0, "L", false, 0, "")
	doc.CellFormat(usable/2, lineHeight-2, right, "", 1, "R", false, 0, "")
}

// signatureLabels returns the left and right signature line labels. Payment
// receipts are countersigned by the guardian or the student; the other kinds
// by whoever takes the copy.
func signatureLabels(kind ReceiptKind) (string, string) {
	if kind == ReceiptPayment {
		return "Collector Signature", "Guardian/Student Signature"
	}
	return "Collector/Issuer Signature", "Receiver Signature (if any)"
}
