package pdf_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabitalok/kabitalok-payments/internal/pdf"
)

func TestReceiptNumberPrefixes(t *testing.T) {
	tests := []struct {
		kind pdf.ReceiptKind
		want string
	}{
		{pdf.ReceiptPayment, "R-42"},
		{pdf.ReceiptExpenditure, "E-42"},
		{pdf.ReceiptDonation, "D-42"},
		{pdf.ReceiptAssistance, "A-42"},
	}
	for _, tt := range tests {
		r := pdf.Receipt{Kind: tt.kind, ID: 42}
		assert.Equal(t, tt.want, r.Number())
	}
}

func TestReceiptFileName(t *testing.T) {
	r := pdf.Receipt{Kind: pdf.ReceiptPayment, ID: 42, PartyName: "Asha Roy"}
	assert.Equal(t, "payment-R-42-Asha Roy.pdf", r.FileName())

	// no party name, the segment is dropped
	r = pdf.Receipt{Kind: pdf.ReceiptExpenditure, ID: 7}
	assert.Equal(t, "expenditure-E-7.pdf", r.FileName())
}

func TestBuildReceipt(t *testing.T) {
	r := pdf.Receipt{
		Kind:      pdf.ReceiptPayment,
		ID:        42,
		Date:      "20-06-2024",
		Amount:    decimal.NewFromInt(500),
		PartyName: "Asha Roy",
		Details: []pdf.Detail{
			{Label: "Student", Value: "Asha Roy"},
			{Label: "Term", Value: "Adya"},
		},
	}

	data, err := pdf.BuildReceipt(r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}

func TestBuildReceipt_LongNoteGrowsPage(t *testing.T) {
	base := pdf.Receipt{
		Kind:   pdf.ReceiptDonation,
		ID:     1,
		Date:   "20-06-2024",
		Amount: decimal.NewFromInt(100),
	}

	short, err := pdf.BuildReceipt(base)
	require.NoError(t, err)

	long := base
	long.Note = strings.Repeat("in memory of a dear friend of the institution ", 20)
	tall, err := pdf.BuildReceipt(long)
	require.NoError(t, err)

	// the wrapped note adds lines, so the document with it is bigger
	assert.Greater(t, len(tall), len(short))
}

func TestBuildReceipt_UnknownKind(t *testing.T) {
	_, err := pdf.BuildReceipt(pdf.Receipt{Kind: "invoice", ID: 1})
	assert.Error(t, err)
}

func TestBuildReceipt_Deterministic(t *testing.T) {
	r := pdf.Receipt{
		Kind:   pdf.ReceiptAssistance,
		ID:     9,
		Date:   "20-06-2024",
		Amount: decimal.NewFromInt(250),
		Details: []pdf.Detail{
			{Label: "Purpose", Value: "Exam fees"},
		},
	}
	a, err := pdf.BuildReceipt(r)
	require.NoError(t, err)
	b, err := pdf.BuildReceipt(r)
	require.NoError(t, err)
	assert.Equal(t, len(a), len(b))
}
