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

type expenditureService struct {
	BaseService
	expenditureRepo portrepo.ExpenditureRepository
}

// NewExpenditureService creates the expenditure tracking service.
func NewExpenditureService(expenditureRepo portrepo.ExpenditureRepository) portssvc.ExpenditureSvcFacade {
	return &expenditureService{expenditureRepo: expenditureRepo}
}

func (s *expenditureService) CreateExpenditure(ctx context.Context, req dto.CreateExpenditureRequest, actor string) (*domain.Expenditure, error) {
	date, ok := domain.CanonicalDMY(req.Date)
	if !ok {
		return nil, fmt.Errorf("date %q is not DD-MM-YYYY: %w", req.Date, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	expenditure := domain.Expenditure{
		Date:   date,
		Amount: req.Amount,
		Reason: req.Reason,
		Person: actor,
	}
	id, err := s.expenditureRepo.SaveExpenditure(ctx, expenditure)
	if err != nil {
		s.LogError(ctx, err, "failed to save expenditure")
		return nil, err
	}
	expenditure.ID = id
	s.LogInfo(ctx, "expenditure recorded",
		slog.Int64("id", id),
		slog.String("amount", expenditure.Amount.StringFixed(2)),
		slog.String("person", actor))
	return &expenditure, nil
}

func (s *expenditureService) GetExpenditureByID(ctx context.Context, id int64) (*domain.Expenditure, error) {
	return s.expenditureRepo.FindExpenditureByID(ctx, id)
}

func (s *expenditureService) ListExpenditures(ctx context.Context) ([]domain.Expenditure, error) {
	expenditures, err := s.expenditureRepo.ListExpenditures(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list expenditures")
		return nil, err
	}
	if expenditures == nil {
		return []domain.Expenditure{}, nil
	}
	return expenditures, nil
}

func (s *expenditureService) UpdateExpenditure(ctx context.Context, id int64, req dto.UpdateExpenditureRequest) (*domain.Expenditure, error) {
	expenditure, err := s.expenditureRepo.FindExpenditureByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		expenditure.Amount = *req.Amount
	}
	if req.Reason != nil {
		expenditure.Reason = *req.Reason
	}
	if err := s.expenditureRepo.UpdateExpenditure(ctx, id, *expenditure); err != nil {
		s.LogError(ctx, err, "failed to update expenditure", slog.Int64("id", id))
		return nil, err
	}
	return expenditure, nil
}

func (s *expenditureService) DeleteExpenditure(ctx context.Context, id int64) error {
	if err := s.expenditureRepo.DeleteExpenditure(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "expenditure deleted", slog.Int64("id", id))
	return nil
}
