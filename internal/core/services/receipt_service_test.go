package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/core/services"
)

// 1x1 white JPEG, enough for the receipt header image.
var testLogo = []byte{
	0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00, 0x01,
	0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0xFF, 0xDB, 0x00, 0x43,
	0x00, 0x03, 0x02, 0x02, 0x02, 0x02, 0x02, 0x03, 0x02, 0x02, 0x02, 0x03,
	0x03, 0x03, 0x03, 0x04, 0x06, 0x04, 0x04, 0x04, 0x04, 0x04, 0x08, 0x06,
	0x06, 0x05, 0x06, 0x09, 0x08, 0x0A, 0x0A, 0x09, 0x08, 0x09, 0x09, 0x0A,
	0x0C, 0x0F, 0x0C, 0x0A, 0x0B, 0x0E, 0x0B, 0x09, 0x09, 0x0D, 0x11, 0x0D,
	0x0E, 0x0F, 0x10, 0x10, 0x11, 0x10, 0x0A, 0x0C, 0x12, 0x13, 0x12, 0x10,
	0x13, 0x0F, 0x10, 0x10, 0x10, 0xFF, 0xC0, 0x00, 0x0B, 0x08, 0x00, 0x01,
	0x00, 0x01, 0x01, 0x01, 0x11, 0x00, 0xFF, 0xC4, 0x00, 0x1F, 0x00, 0x00,
	0x01, 0x05, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0A, 0x0B, 0xFF, 0xC4, 0x00, 0xB5, 0x10, 0x00, 0x02, 0x01, 0x03,
	0x03, 0x02, 0x04, 0x03, 0x05, 0x05, 0x04, 0x04, 0x00, 0x00, 0x01, 0x7D,
	0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12, 0x21, 0x31, 0x41, 0x06,
	0x13, 0x51, 0x61, 0x07, 0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xA1, 0x08,
	0x23, 0x42, 0xB1, 0xC1, 0x15, 0x52, 0xD1, 0xF0, 0x24, 0x33, 0x62, 0x72,
	0x82, 0x09, 0x0A, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x25, 0x26, 0x27, 0x28,
	0x29, 0x2A, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3A, 0x43, 0x44, 0x45,
	0x46, 0x47, 0x48, 0x49, 0x4A, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
	0x5A, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6A, 0x73, 0x74, 0x75,
	0x76, 0x77, 0x78, 0x79, 0x7A, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
	0x8A, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9A, 0xA2, 0xA3,
	0xA4, 0xA5, 0xA6, 0xA7, 0xA8, 0xA9, 0xAA, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6,
	0xB7, 0xB8, 0xB9, 0xBA, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7, 0xC8, 0xC9,
	0xCA, 0xD2, 0xD3, 0xD4, 0xD5, 0xD6, 0xD7, 0xD8, 0xD9, 0xDA, 0xE1, 0xE2,
	0xE3, 0xE4, 0xE5, 0xE6, 0xE7, 0xE8, 0xE9, 0xEA, 0xF1, 0xF2, 0xF3, 0xF4,
	0xF5, 0xF6, 0xF7, 0xF8, 0xF9, 0xFA, 0xFF, 0xDA, 0x00, 0x08, 0x01, 0x01,
	0x00, 0x00, 0x3F, 0x00, 0xFB, 0xD0, 0xFF, 0xD9,
}

type ReceiptServiceTestSuite struct {
	suite.Suite
	paymentRepo     *MockPaymentRepository
	expenditureRepo *MockExpenditureRepository
	donationRepo    *MockDonationRepository
	assistanceRepo  *MockAssistanceRepository
	studentRepo     *MockStudentRepository
	exportDir       string
	logoPath        string
	service         portssvc.ReceiptSvcFacade
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.paymentRepo = new(MockPaymentRepository)
	suite.expenditureRepo = new(MockExpenditureRepository)
	suite.donationRepo = new(MockDonationRepository)
	suite.assistanceRepo = new(MockAssistanceRepository)
	suite.studentRepo = new(MockStudentRepository)
	suite.exportDir = suite.T().TempDir()
	suite.logoPath = filepath.Join(suite.T().TempDir(), "logo.jpeg")
	suite.Require().NoError(os.WriteFile(suite.logoPath, testLogo, 0o644))
	suite.service = services.NewReceiptService(
		suite.paymentRepo, suite.expenditureRepo, suite.donationRepo, suite.assistanceRepo,
		suite.studentRepo, suite.exportDir, suite.logoPath)
}

func (suite *ReceiptServiceTestSuite) TestPaymentReceipt_FileName() {
	ctx := context.Background()
	suite.paymentRepo.On("FindPaymentByID", ctx, int64(42)).Return(&domain.Payment{
		ID: 42, StudentID: "S-1", Term: domain.TermAdya,
		Amount: decimal.NewFromInt(500), Date: "20-06-2024", Collector: "kabitalok",
	}, nil).Once()
	suite.studentRepo.On("FindStudentByCode", ctx, "S-1").Return(&domain.Student{
		StudentID: "S-1", Name: "Asha Roy",
	}, nil).Once()

	doc, err := suite.service.PaymentReceipt(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal("payment-R-42-Asha Roy.pdf", doc.FileName)
	suite.FileExists(doc.Path)
	suite.NotEmpty(doc.Data)
}

func (suite *ReceiptServiceTestSuite) TestPaymentReceipt_OrphanedStudentStillPrints() {
	ctx := context.Background()
	suite.paymentRepo.On("FindPaymentByID", ctx, int64(7)).Return(&domain.Payment{
		ID: 7, StudentID: "S-gone", Amount: decimal.NewFromInt(100), Date: "20-06-2024",
	}, nil).Once()
	suite.studentRepo.On("FindStudentByCode", ctx, "S-gone").Return(nil, apperrors.ErrNotFound).Once()

	doc, err := suite.service.PaymentReceipt(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal("payment-R-7.pdf", doc.FileName)
}

func (suite *ReceiptServiceTestSuite) TestPaymentReceipt_MissingLogo() {
	ctx := context.Background()
	suite.Require().NoError(os.Remove(suite.logoPath))
	suite.paymentRepo.On("FindPaymentByID", ctx, int64(1)).Return(&domain.Payment{
		ID: 1, StudentID: "S-1", Amount: decimal.NewFromInt(100), Date: "20-06-2024",
	}, nil).Once()
	suite.studentRepo.On("FindStudentByCode", ctx, "S-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PaymentReceipt(ctx, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAssetNotReady)
}

func (suite *ReceiptServiceTestSuite) TestExpenditureReceipt() {
	ctx := context.Background()
	suite.expenditureRepo.On("FindExpenditureByID", ctx, int64(3)).Return(&domain.Expenditure{
		ID: 3, Date: "20-06-2024", Amount: decimal.NewFromInt(200), Reason: "Hall rent", Person: "kabitalok",
	}, nil).Once()

	doc, err := suite.service.ExpenditureReceipt(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal("expenditure-E-3.pdf", doc.FileName)
}

func (suite *ReceiptServiceTestSuite) TestAssistanceReceipt_NotFound() {
	ctx := context.Background()
	suite.assistanceRepo.On("FindAssistanceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AssistanceReceipt(ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
