package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type donationService struct {
	BaseService
	donationRepo portrepo.DonationRepository
}

// NewDonationService creates the donation tracking service.
func NewDonationService(donationRepo portrepo.DonationRepository) portssvc.DonationSvcFacade {
	return &donationService{donationRepo: donationRepo}
}

func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest, actor string) (*domain.Donation, error) {
	date, ok := domain.CanonicalDMY(req.Date)
	if !ok {
		return nil, fmt.Errorf("date %q is not DD-MM-YYYY: %w", req.Date, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	donation := domain.Donation{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Date:      date,
		Note:      req.Note,
		Collector: actor,
	}
	id, err := s.donationRepo.SaveDonation(ctx, donation)
	if err != nil {
		s.LogError(ctx, err, "failed to save donation")
		return nil, err
	}
	donation.ID = id
	s.LogInfo(ctx, "donation recorded",
		slog.Int64("id", id),
		slog.String("student_code", donation.StudentID),
		slog.String("amount", donation.Amount.StringFixed(2)))
	return &donation, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id int64) (*domain.Donation, error) {
	return s.donationRepo.FindDonationByID(ctx, id)
}

func (s *donationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.donationRepo.ListDonations(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list donations")
		return nil, err
	}
	if donations == nil {
		return []domain.Donation{}, nil
	}
	return donations, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id int64, req dto.UpdateDonationRequest) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		donation.Amount = *req.Amount
	}
	if req.Note != nil {
		donation.Note = *req.Note
	}
	if err := s.donationRepo.UpdateDonation(ctx, id, *donation); err != nil {
		s.LogError(ctx, err, "failed to update donation", slog.Int64("id", id))
		return nil, err
	}
	return donation, nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id int64) error {
	if err := s.donationRepo.DeleteDonation(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "donation deleted", slog.Int64("id", id))
	return nil
}
