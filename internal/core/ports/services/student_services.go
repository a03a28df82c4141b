package services

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

// StudentReaderSvc defines read operations for student data.
type StudentReaderSvc interface {
	// GetStudentByID retrieves a student by internal id.
	GetStudentByID(ctx context.Context, id int64) (*domain.Student, error)

	// ListStudents retrieves students matching search/filter/sort/paging params.
	ListStudents(ctx context.Context, params dto.ListStudentsParams) ([]domain.Student, int, error)

	// ListInactiveStudents retrieves students with no payment within the last
	// months calendar months. Students with no payments at all are included.
	ListInactiveStudents(ctx context.Context, months int) ([]domain.Student, error)
}

// StudentWriterSvc defines write operations for student data.
type StudentWriterSvc interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*domain.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// StudentSvcFacade combines all student-related service interfaces.
type StudentSvcFacade interface {
	StudentReaderSvc
	StudentWriterSvc
}
