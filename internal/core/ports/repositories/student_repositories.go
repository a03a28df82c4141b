package repositories

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	// SaveStudent inserts a new student and returns its id.
	SaveStudent(ctx context.Context, student domain.Student) (int64, error)

	// FindStudentByID retrieves a student by internal id.
	FindStudentByID(ctx context.Context, id int64) (*domain.Student, error)

	// FindStudentByCode retrieves a student by the human-readable student code.
	FindStudentByCode(ctx context.Context, studentID string) (*domain.Student, error)

	// ListStudents returns the full students table in insertion order.
	ListStudents(ctx context.Context) ([]domain.Student, error)

	// UpdateStudent replaces the mutable fields of an existing student.
	UpdateStudent(ctx context.Context, student domain.Student) error

	// DeleteStudent removes a student by internal id.
	DeleteStudent(ctx context.Context, id int64) error
}
