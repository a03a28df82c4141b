package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// --- Mock StudentRepository ---
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student) (int64, error) {
	args := m.Called(ctx, student)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) FindStudentByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) FindStudentByCode(ctx context.Context, code string) (*domain.Student, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByStudent(ctx context.Context, studentID string, term domain.Term) ([]domain.Payment, error) {
	args := m.Called(ctx, studentID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, id int64, payment domain.Payment) error {
	args := m.Called(ctx, id, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock ExpenditureRepository ---
type MockExpenditureRepository struct {
	mock.Mock
}

func (m *MockExpenditureRepository) SaveExpenditure(ctx context.Context, exp domain.Expenditure) (int64, error) {
	args := m.Called(ctx, exp)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenditureRepository) FindExpenditureByID(ctx context.Context, id int64) (*domain.Expenditure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expenditure), args.Error(1)
}

func (m *MockExpenditureRepository) ListExpenditures(ctx context.Context) ([]domain.Expenditure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expenditure), args.Error(1)
}

func (m *MockExpenditureRepository) UpdateExpenditure(ctx context.Context, id int64, exp domain.Expenditure) error {
	args := m.Called(ctx, id, exp)
	return args.Error(0)
}

func (m *MockExpenditureRepository) DeleteExpenditure(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock DonationRepository ---
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) SaveDonation(ctx context.Context, don domain.Donation) (int64, error) {
	args := m.Called(ctx, don)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepository) FindDonationByID(ctx context.Context, id int64) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateDonation(ctx context.Context, id int64, don domain.Donation) error {
	args := m.Called(ctx, id, don)
	return args.Error(0)
}

func (m *MockDonationRepository) DeleteDonation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock AssistanceRepository ---
type MockAssistanceRepository struct {
	mock.Mock
}

func (m *MockAssistanceRepository) SaveAssistance(ctx context.Context, a domain.Assistance) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssistanceRepository) FindAssistanceByID(ctx context.Context, id int64) (*domain.Assistance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assistance), args.Error(1)
}

func (m *MockAssistanceRepository) ListAssistance(ctx context.Context) ([]domain.Assistance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Assistance), args.Error(1)
}

func (m *MockAssistanceRepository) UpdateAssistance(ctx context.Context, id int64, a domain.Assistance) error {
	args := m.Called(ctx, id, a)
	return args.Error(0)
}

func (m *MockAssistanceRepository) DeleteAssistance(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) (int64, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) FindAdminByID(ctx context.Context, id int64) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) UpdateAdmin(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteAdmin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock BackupRepository ---
type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) RestoreTables(ctx context.Context, students []domain.Student, payments []domain.Payment, expenditures []domain.Expenditure) error {
	args := m.Called(ctx, students, payments, expenditures)
	return args.Error(0)
}
