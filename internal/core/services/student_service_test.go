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

type StudentServiceTestSuite struct {
	suite.Suite
	studentRepo *MockStudentRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.StudentSvcFacade
	now         time.Time
}

func (suite *StudentServiceTestSuite) SetupTest() {
	suite.studentRepo = new(MockStudentRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.now = time.Date(2024, 6, 20, 12, 0, 0, 0, time.Local)
	suite.service = services.NewStudentService(suite.studentRepo, suite.paymentRepo,
		services.WithStudentClock(func() time.Time { return suite.now }))
}

func (suite *StudentServiceTestSuite) roster() []domain.Student {
	return []domain.Student{
		{ID: 1, StudentID: "S-1", Name: "Asha Roy", Year: domain.TermAdya, Field: []domain.FieldTag{domain.FieldSinging}},
		{ID: 2, StudentID: "S-2", Name: "Bikash Sen", Year: domain.TermMadhya, Field: []domain.FieldTag{domain.FieldPainting}},
		{ID: 3, StudentID: "S-3", Name: "Chhaya Das", Year: domain.TermAdya, Field: []domain.FieldTag{domain.FieldSinging, domain.FieldRecitation}},
	}
}

func (suite *StudentServiceTestSuite) TestCreateStudent_Success() {
	ctx := context.Background()
	req := dto.CreateStudentRequest{
		StudentID: "S-9", Name: "Asha Roy", Year: "Adya",
		Field: []string{"Singing"}, AdmissionDate: "5-3-2024",
	}

	suite.studentRepo.On("SaveStudent", ctx, mock.MatchedBy(func(s domain.Student) bool {
		return s.StudentID == "S-9" && s.Year == domain.TermAdya && len(s.Field) == 1
	})).Return(int64(9), nil).Once()

	student, err := suite.service.CreateStudent(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(9), student.ID)
	suite.studentRepo.AssertExpectations(suite.T())
}

func (suite *StudentServiceTestSuite) TestCreateStudent_RejectsUnknownTerm() {
	req := dto.CreateStudentRequest{StudentID: "S-9", Name: "X", Year: "Eighth Year"}

	_, err := suite.service.CreateStudent(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.studentRepo.AssertNotCalled(suite.T(), "SaveStudent", mock.Anything, mock.Anything)
}

func (suite *StudentServiceTestSuite) TestCreateStudent_RejectsUnknownSubjectTag() {
	req := dto.CreateStudentRequest{StudentID: "S-9", Name: "X", Field: []string{"Karate"}}

	_, err := suite.service.CreateStudent(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StudentServiceTestSuite) TestListStudents_SearchAndTermFilter() {
	ctx := context.Background()
	suite.studentRepo.On("ListStudents", ctx).Return(suite.roster(), nil).Once()

	students, totalPages, err := suite.service.ListStudents(ctx, dto.ListStudentsParams{
		Term: "Adya", Search: "as", Page: 1, PerPage: 10,
	})

	suite.Require().NoError(err)
	// "as" matches Asha Roy and Chhaya Das, both Adya
	suite.Len(students, 2)
	suite.Equal(1, totalPages)
}

func (suite *StudentServiceTestSuite) TestListStudents_Paging() {
	ctx := context.Background()
	suite.studentRepo.On("ListStudents", ctx).Return(suite.roster(), nil).Once()

	students, totalPages, err := suite.service.ListStudents(ctx, dto.ListStudentsParams{Page: 2, PerPage: 2})

	suite.Require().NoError(err)
	suite.Len(students, 1)
	suite.Equal(2, totalPages)
	suite.Equal(int64(3), students[0].ID)
}

func (suite *StudentServiceTestSuite) TestListStudents_NameSort() {
	ctx := context.Background()
	suite.studentRepo.On("ListStudents", ctx).Return(suite.roster(), nil).Once()

	students, _, err := suite.service.ListStudents(ctx, dto.ListStudentsParams{Sort: "name-desc", Page: 1, PerPage: 10})

	suite.Require().NoError(err)
	suite.Equal("Chhaya Das", students[0].Name)
	suite.Equal("Asha Roy", students[2].Name)
}

func (suite *StudentServiceTestSuite) TestListInactiveStudents() {
	ctx := context.Background()
	suite.studentRepo.On("ListStudents", ctx).Return(suite.roster(), nil).Once()
	suite.paymentRepo.On("ListPayments", ctx).Return([]domain.Payment{
		// S-1 paid recently, S-2 paid long ago, S-3 never paid
		{StudentID: "S-1", Date: "15-06-2024", Amount: decimal.NewFromInt(100)},
		{StudentID: "S-2", Date: "01-01-2024", Amount: decimal.NewFromInt(100)},
	}, nil).Once()

	inactive, err := suite.service.ListInactiveStudents(ctx, 3)

	suite.Require().NoError(err)
	suite.Len(inactive, 2)
	suite.Equal("S-2", inactive[0].StudentID)
	suite.Equal("S-3", inactive[1].StudentID)
}

func (suite *StudentServiceTestSuite) TestListInactiveStudents_UnreadableDateIsNotActivity() {
	ctx := context.Background()
	suite.studentRepo.On("ListStudents", ctx).Return(suite.roster()[:1], nil).Once()
	suite.paymentRepo.On("ListPayments", ctx).Return([]domain.Payment{
		{StudentID: "S-1", Date: "yesterday", Amount: decimal.NewFromInt(100)},
	}, nil).Once()

	inactive, err := suite.service.ListInactiveStudents(ctx, 3)

	suite.Require().NoError(err)
	suite.Len(inactive, 1)
}

func (suite *StudentServiceTestSuite) TestListInactiveStudents_RejectsNonPositiveMonths() {
	_, err := suite.service.ListInactiveStudents(context.Background(), 0)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StudentServiceTestSuite) TestUpdateStudent_PartialUpdate() {
	ctx := context.Background()
	existing := suite.roster()[0]
	newName := "Asha Sen"

	suite.studentRepo.On("FindStudentByID", ctx, int64(1)).Return(&existing, nil).Once()
	suite.studentRepo.On("UpdateStudent", ctx, mock.MatchedBy(func(s domain.Student) bool {
		return s.Name == "Asha Sen" && s.StudentID == "S-1" && s.Year == domain.TermAdya
	})).Return(nil).Once()

	student, err := suite.service.UpdateStudent(ctx, 1, dto.UpdateStudentRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Asha Sen", student.Name)
	suite.studentRepo.AssertExpectations(suite.T())
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
