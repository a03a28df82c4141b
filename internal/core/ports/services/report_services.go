package services

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

// ReportSvcFacade produces filtered period views and the exported report
// document. Both operate on fully materialized table snapshots; generation
// runs to completion or fails, there is no cancellation or retry.
type ReportSvcFacade interface {
	// BuildReport fetches the four record collections, filters each by the
	// period independently and computes totals.
	BuildReport(ctx context.Context, period domain.Period) (*domain.Report, error)

	// ExportReportPDF renders the period report as a paginated tabular PDF
	// and writes it under the export directory.
	ExportReportPDF(ctx context.Context, period domain.Period) (*dto.ExportedDocument, error)
}

// ReceiptSvcFacade renders single-record printable receipts.
type ReceiptSvcFacade interface {
	PaymentReceipt(ctx context.Context, paymentID int64) (*dto.ExportedDocument, error)
	ExpenditureReceipt(ctx context.Context, expenditureID int64) (*dto.ExportedDocument, error)
	DonationReceipt(ctx context.Context, donationID int64) (*dto.ExportedDocument, error)
	AssistanceReceipt(ctx context.Context, assistanceID int64) (*dto.ExportedDocument, error)
}

// BackupSvcFacade serializes and restores the legacy backup format.
type BackupSvcFacade interface {
	// ExportBackup snapshots students, payments and expenditures.
	ExportBackup(ctx context.Context) (*dto.BackupDocument, error)

	// RestoreBackup validates the document shape and replaces the three
	// backed-up tables. Rejects with apperrors.ErrMalformedBackup before any
	// write when a required key is missing.
	RestoreBackup(ctx context.Context, raw []byte) error
}
