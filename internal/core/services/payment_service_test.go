package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/core/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *MockPaymentRepository
	studentRepo *MockStudentRepository
	service     portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.paymentRepo = new(MockPaymentRepository)
	suite.studentRepo = new(MockStudentRepository)
	suite.service = services.NewPaymentService(suite.paymentRepo, suite.studentRepo,
		services.WithPaymentClock(func() time.Time {
			return time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
		}))
}

func (suite *PaymentServiceTestSuite) student() *domain.Student {
	return &domain.Student{
		ID:        7,
		StudentID: "S-1",
		Name:      "Asha Roy",
		Field:     []domain.FieldTag{domain.FieldSinging, domain.FieldPainting},
	}
}

func (suite *PaymentServiceTestSuite) TestAddPayment_StampsDateAndCopiesTags() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Term:      "Adya",
		Amount:    decimal.NewFromInt(500),
		Collector: "kabitalok",
	}

	suite.studentRepo.On("FindStudentByID", ctx, int64(7)).Return(suite.student(), nil).Once()
	suite.paymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.StudentID == "S-1" &&
			p.Date == "20-06-2024" &&
			len(p.Field) == 2 &&
			p.Field[0] == domain.FieldSinging
	})).Return(int64(42), nil).Once()

	payment, err := suite.service.AddPayment(ctx, 7, req, "kabitalok")

	suite.Require().NoError(err)
	suite.Equal(int64(42), payment.ID)
	suite.Equal("20-06-2024", payment.Date)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_UnknownTerm() {
	req := dto.CreatePaymentRequest{Term: "Eighth Year", Amount: decimal.NewFromInt(500), Collector: "k"}

	_, err := suite.service.AddPayment(context.Background(), 7, req, "k")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.studentRepo.AssertNotCalled(suite.T(), "FindStudentByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_NegativeAmount() {
	req := dto.CreatePaymentRequest{Term: "Adya", Amount: decimal.NewFromInt(-1), Collector: "k"}

	_, err := suite.service.AddPayment(context.Background(), 7, req, "k")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_ZeroAmountAccepted() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{Term: "Adya", Amount: decimal.Zero, Collector: "k"}

	suite.studentRepo.On("FindStudentByID", ctx, int64(7)).Return(suite.student(), nil).Once()
	suite.paymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount.IsZero()
	})).Return(int64(43), nil).Once()

	payment, err := suite.service.AddPayment(ctx, 7, req, "k")

	suite.Require().NoError(err)
	suite.True(payment.Amount.IsZero())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_StudentMissing() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{Term: "Adya", Amount: decimal.NewFromInt(500), Collector: "k"}
	suite.studentRepo.On("FindStudentByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddPayment(ctx, 99, req, "k")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListStudentPayments_NarrowsBySubject() {
	ctx := context.Background()
	suite.studentRepo.On("FindStudentByID", ctx, int64(7)).Return(suite.student(), nil).Once()
	suite.paymentRepo.On("ListPaymentsByStudent", ctx, "S-1", domain.TermAdya).Return([]domain.Payment{
		{ID: 1, Field: []domain.FieldTag{domain.FieldSinging}},
		{ID: 2, Field: []domain.FieldTag{domain.FieldPainting}},
		{ID: 3, Field: []domain.FieldTag{domain.FieldSinging, domain.FieldPainting}},
	}, nil).Once()

	payments, err := suite.service.ListStudentPayments(ctx, 7, "Adya", "Singing")

	suite.Require().NoError(err)
	suite.Len(payments, 2)
	suite.Equal(int64(1), payments[0].ID)
	suite.Equal(int64(3), payments[1].ID)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_AmountAndNoteOnly() {
	ctx := context.Background()
	existing := &domain.Payment{ID: 42, StudentID: "S-1", Amount: decimal.NewFromInt(500), Note: "old"}
	newAmount := decimal.NewFromInt(600)
	newNote := "corrected"

	suite.paymentRepo.On("FindPaymentByID", ctx, int64(42)).Return(existing, nil).Once()
	suite.paymentRepo.On("UpdatePayment", ctx, int64(42), mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount.Equal(newAmount) && p.Note == "corrected" && p.StudentID == "S-1"
	})).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, 42, dto.UpdatePaymentRequest{Amount: &newAmount, Note: &newNote})

	suite.Require().NoError(err)
	suite.Equal("600.00", payment.Amount.StringFixed(2))
	suite.paymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
