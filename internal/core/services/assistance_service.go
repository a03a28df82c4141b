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

type assistanceService struct {
	BaseService
	assistanceRepo portrepo.AssistanceRepository
}

// NewAssistanceService creates the financial assistance tracking service.
func NewAssistanceService(assistanceRepo portrepo.AssistanceRepository) portssvc.AssistanceSvcFacade {
	return &assistanceService{assistanceRepo: assistanceRepo}
}

func (s *assistanceService) CreateAssistance(ctx context.Context, req dto.CreateAssistanceRequest, actor string) (*domain.Assistance, error) {
	date, ok := domain.CanonicalDMY(req.Date)
	if !ok {
		return nil, fmt.Errorf("date %q is not DD-MM-YYYY: %w", req.Date, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	assistance := domain.Assistance{
		Date:    date,
		Amount:  req.Amount,
		Purpose: req.Purpose,
		AddedBy: actor,
	}
	id, err := s.assistanceRepo.SaveAssistance(ctx, assistance)
	if err != nil {
		s.LogError(ctx, err, "failed to save assistance")
		return nil, err
	}
	assistance.ID = id
	s.LogInfo(ctx, "assistance recorded",
		slog.Int64("id", id),
		slog.String("amount", assistance.Amount.StringFixed(2)),
		slog.String("added_by", actor))
	return &assistance, nil
}

func (s *assistanceService) GetAssistanceByID(ctx context.Context, id int64) (*domain.Assistance, error) {
	return s.assistanceRepo.FindAssistanceByID(ctx, id)
}

func (s *assistanceService) ListAssistance(ctx context.Context) ([]domain.Assistance, error) {
	entries, err := s.assistanceRepo.ListAssistance(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list assistance")
		return nil, err
	}
	if entries == nil {
		return []domain.Assistance{}, nil
	}
	return entries, nil
}

func (s *assistanceService) UpdateAssistance(ctx context.Context, id int64, req dto.UpdateAssistanceRequest) (*domain.Assistance, error) {
	assistance, err := s.assistanceRepo.FindAssistanceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		assistance.Amount = *req.Amount
	}
	if req.Purpose != nil {
		assistance.Purpose = *req.Purpose
	}
	if err := s.assistanceRepo.UpdateAssistance(ctx, id, *assistance); err != nil {
		s.LogError(ctx, err, "failed to update assistance", slog.Int64("id", id))
		return nil, err
	}
	return assistance, nil
}

func (s *assistanceService) DeleteAssistance(ctx context.Context, id int64) error {
	if err := s.assistanceRepo.DeleteAssistance(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "assistance deleted", slog.Int64("id", id))
	return nil
}
