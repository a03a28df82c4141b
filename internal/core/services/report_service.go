package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/pdf"
)

type reportService struct {
	BaseService
	paymentRepo     portrepo.PaymentRepository
	expenditureRepo portrepo.ExpenditureRepository
	donationRepo    portrepo.DonationRepository
	assistanceRepo  portrepo.AssistanceRepository
	exportDir       string
	now             func() time.Time
}

// ReportServiceOption customizes a report service.
type ReportServiceOption func(*reportService)

// WithReportClock overrides the wall clock the period filter evaluates
// against.
func WithReportClock(now func() time.Time) ReportServiceOption {
	return func(s *reportService) { s.now = now }
}

// NewReportService creates the period report service.
func NewReportService(
	paymentRepo portrepo.PaymentRepository,
	expenditureRepo portrepo.ExpenditureRepository,
	donationRepo portrepo.DonationRepository,
	assistanceRepo portrepo.AssistanceRepository,
	exportDir string,
	opts ...ReportServiceOption,
) portssvc.ReportSvcFacade {
	s := &reportService{
		paymentRepo:     paymentRepo,
		expenditureRepo: expenditureRepo,
		donationRepo:    donationRepo,
		assistanceRepo:  assistanceRepo,
		exportDir:       exportDir,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildReport fetches the four record collections, filters each by the
// period independently and computes totals over the filtered sets.
func (s *reportService) BuildReport(ctx context.Context, period domain.Period) (*domain.Report, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments for report")
		return nil, err
	}
	expenditures, err := s.expenditureRepo.ListExpenditures(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list expenditures for report")
		return nil, err
	}
	donations, err := s.donationRepo.ListDonations(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list donations for report")
		return nil, err
	}
	assistance, err := s.assistanceRepo.ListAssistance(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list assistance for report")
		return nil, err
	}

	now := s.now()
	report := &domain.Report{
		Period:       period,
		Payments:     domain.FilterByPeriod(payments, period, now),
		Expenditures: domain.FilterByPeriod(expenditures, period, now),
		Donations:    domain.FilterByPeriod(donations, period, now),
		Assistance:   domain.FilterByPeriod(assistance, period, now),
	}
	report.Totals = domain.ComputeTotals(report.Payments, report.Expenditures, report.Donations, report.Assistance)
	return report, nil
}

// ExportReportPDF renders the period report and writes it under the export
// directory. Generation runs to completion or fails.
func (s *reportService) ExportReportPDF(ctx context.Context, period domain.Period) (*dto.ExportedDocument, error) {
	report, err := s.BuildReport(ctx, period)
	if err != nil {
		return nil, err
	}

	generatedOn := s.now()
	data, err := pdf.BuildReport(report, generatedOn)
	if err != nil {
		s.LogError(ctx, err, "failed to render report pdf")
		return nil, err
	}

	fileName := pdf.ReportFileName(period, generatedOn)
	path := filepath.Join(s.exportDir, fileName)
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write report pdf: %w", err)
	}

	s.LogInfo(ctx, "report exported",
		slog.String("file", fileName),
		slog.String("period", string(period.Kind)),
		slog.Int("payments", len(report.Payments)),
		slog.Int("expenditures", len(report.Expenditures)))
	return &dto.ExportedDocument{FileName: fileName, Path: path, Data: data}, nil
}
