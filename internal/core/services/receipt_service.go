package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/pdf"
)

type receiptService struct {
	BaseService
	paymentRepo     portrepo.PaymentRepository
	expenditureRepo portrepo.ExpenditureRepository
	donationRepo    portrepo.DonationRepository
	assistanceRepo  portrepo.AssistanceRepository
	studentRepo     portrepo.StudentRepository
	exportDir       string
	logoPath        string
}

// NewReceiptService creates the single-record receipt service.
func NewReceiptService(
	paymentRepo portrepo.PaymentRepository,
	expenditureRepo portrepo.ExpenditureRepository,
	donationRepo portrepo.DonationRepository,
	assistanceRepo portrepo.AssistanceRepository,
	studentRepo portrepo.StudentRepository,
	exportDir string,
	logoPath string,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		paymentRepo:     paymentRepo,
		expenditureRepo: expenditureRepo,
		donationRepo:    donationRepo,
		assistanceRepo:  assistanceRepo,
		studentRepo:     studentRepo,
		exportDir:       exportDir,
		logoPath:        logoPath,
	}
}

// studentName resolves the display name behind a student code. Payments and
// donations keep the code even after the student record is gone, so a
// missing student is not an error, the receipt just carries no name.
func (s *receiptService) studentName(ctx context.Context, code string) (string, error) {
	student, err := s.studentRepo.FindStudentByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return student.Name, nil
}

// loadLogo reads the organization logo. The payment receipt header requires
// it; a missing or unreadable file surfaces as ErrAssetNotReady so the
// caller can tell a deployment gap from a render bug.
func (s *receiptService) loadLogo() ([]byte, error) {
	logo, err := os.ReadFile(s.logoPath)
	if err != nil {
		return nil, fmt.Errorf("logo at %s: %w", s.logoPath, apperrors.ErrAssetNotReady)
	}
	return logo, nil
}

func (s *receiptService) PaymentReceipt(ctx context.Context, paymentID int64) (*dto.ExportedDocument, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	name, err := s.studentName(ctx, payment.StudentID)
	if err != nil {
		return nil, err
	}
	logo, err := s.loadLogo()
	if err != nil {
		return nil, err
	}

	details := []pdf.Detail{
		{Label: "Student", Value: name},
		{Label: "Student ID", Value: payment.StudentID},
		{Label: "Term", Value: string(payment.Term)},
		{Label: "Subjects", Value: joinFieldTags(payment.Field)},
		{Label: "Collected By", Value: payment.Collector},
	}
	return s.export(ctx, pdf.Receipt{
		Kind:      pdf.ReceiptPayment,
		ID:        payment.ID,
		Date:      payment.Date,
		Amount:    payment.Amount,
		PartyName: name,
		Details:   details,
		Note:      payment.Note,
		Logo:      logo,
	})
}

func (s *receiptService) ExpenditureReceipt(ctx context.Context, expenditureID int64) (*dto.ExportedDocument, error) {
	expenditure, err := s.expenditureRepo.FindExpenditureByID(ctx, expenditureID)
	if err != nil {
		return nil, err
	}
	details := []pdf.Detail{
		{Label: "Reason", Value: expenditure.Reason},
		{Label: "Spent By", Value: expenditure.Person},
	}
	return s.export(ctx, pdf.Receipt{
		Kind:    pdf.ReceiptExpenditure,
		ID:      expenditure.ID,
		Date:    expenditure.Date,
		Amount:  expenditure.Amount,
		Details: details,
	})
}

func (s *receiptService) DonationReceipt(ctx context.Context, donationID int64) (*dto.ExportedDocument, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	name, err := s.studentName(ctx, donation.StudentID)
	if err != nil {
		return nil, err
	}
	details := []pdf.Detail{
		{Label: "Donor", Value: name},
		{Label: "Student ID", Value: donation.StudentID},
		{Label: "Collected By", Value: donation.Collector},
	}
	return s.export(ctx, pdf.Receipt{
		Kind:      pdf.ReceiptDonation,
		ID:        donation.ID,
		Date:      donation.Date,
		Amount:    donation.Amount,
		PartyName: name,
		Details:   details,
		Note:      donation.Note,
	})
}

func (s *receiptService) AssistanceReceipt(ctx context.Context, assistanceID int64) (*dto.ExportedDocument, error) {
	assistance, err := s.assistanceRepo.FindAssistanceByID(ctx, assistanceID)
	if err != nil {
		return nil, err
	}
	details := []pdf.Detail{
		{Label: "Purpose", Value: assistance.Purpose},
		{Label: "Added By", Value: assistance.AddedBy},
	}
	return s.export(ctx, pdf.Receipt{
		Kind:    pdf.ReceiptAssistance,
		ID:      assistance.ID,
		Date:    assistance.Date,
		Amount:  assistance.Amount,
		Details: details,
	})
}

func (s *receiptService) export(ctx context.Context, receipt pdf.Receipt) (*dto.ExportedDocument, error) {
	data, err := pdf.BuildReceipt(receipt)
	if err != nil {
		s.LogError(ctx, err, "failed to render receipt", slog.String("kind", string(receipt.Kind)))
		return nil, err
	}
	fileName := receipt.FileName()
	path := filepath.Join(s.exportDir, fileName)
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write receipt pdf: %w", err)
	}
	s.LogInfo(ctx, "receipt exported", slog.String("file", fileName))
	return &dto.ExportedDocument{FileName: fileName, Path: path, Data: data}, nil
}

func joinFieldTags(tags []domain.FieldTag) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += string(t)
	}
	return out
}
