package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/core/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type ExpenditureServiceTestSuite struct {
	suite.Suite
	expenditureRepo *MockExpenditureRepository
	service         portssvc.ExpenditureSvcFacade
}

func (suite *ExpenditureServiceTestSuite) SetupTest() {
	suite.expenditureRepo = new(MockExpenditureRepository)
	suite.service = services.NewExpenditureService(suite.expenditureRepo)
}

func (suite *ExpenditureServiceTestSuite) TestCreateExpenditure_StampsActor() {
	ctx := context.Background()
	req := dto.CreateExpenditureRequest{
		Date:   "20-06-2024",
		Amount: decimal.NewFromInt(200),
		Reason: "Hall rent",
	}

	suite.expenditureRepo.On("SaveExpenditure", ctx, mock.MatchedBy(func(e domain.Expenditure) bool {
		return e.Person == "kabitalok" && e.Date == "20-06-2024"
	})).Return(int64(3), nil).Once()

	exp, err := suite.service.CreateExpenditure(ctx, req, "kabitalok")

	suite.Require().NoError(err)
	suite.Equal(int64(3), exp.ID)
	suite.Equal("kabitalok", exp.Person)
}

func (suite *ExpenditureServiceTestSuite) TestCreateExpenditure_ZeroAmountAccepted() {
	ctx := context.Background()
	req := dto.CreateExpenditureRequest{Date: "20-06-2024", Amount: decimal.Zero, Reason: "Waived"}

	suite.expenditureRepo.On("SaveExpenditure", ctx, mock.MatchedBy(func(e domain.Expenditure) bool {
		return e.Amount.IsZero()
	})).Return(int64(4), nil).Once()

	exp, err := suite.service.CreateExpenditure(ctx, req, "k")

	suite.Require().NoError(err)
	suite.True(exp.Amount.IsZero())
}

func (suite *ExpenditureServiceTestSuite) TestCreateExpenditure_NegativeAmount() {
	req := dto.CreateExpenditureRequest{Date: "20-06-2024", Amount: decimal.NewFromInt(-5), Reason: "x"}

	_, err := suite.service.CreateExpenditure(context.Background(), req, "k")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.expenditureRepo.AssertNotCalled(suite.T(), "SaveExpenditure", mock.Anything, mock.Anything)
}

func (suite *ExpenditureServiceTestSuite) TestCreateExpenditure_BadDate() {
	req := dto.CreateExpenditureRequest{Date: "2024-06-20", Amount: decimal.NewFromInt(5), Reason: "x"}

	_, err := suite.service.CreateExpenditure(context.Background(), req, "k")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestExpenditureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenditureServiceTestSuite))
}
