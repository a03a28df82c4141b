package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

type studentService struct {
	BaseService
	studentRepo portrepo.StudentRepository
	paymentRepo portrepo.PaymentRepository
	now         func() time.Time
}

// StudentServiceOption customizes a student service.
type StudentServiceOption func(*studentService)

// WithStudentClock overrides the wall clock, used by the inactivity cutoff.
func WithStudentClock(now func() time.Time) StudentServiceOption {
	return func(s *studentService) { s.now = now }
}

// NewStudentService creates the student enrollment service.
func NewStudentService(studentRepo portrepo.StudentRepository, paymentRepo portrepo.PaymentRepository, opts ...StudentServiceOption) portssvc.StudentSvcFacade {
	s := &studentService{
		studentRepo: studentRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func toFieldTags(fields []string) ([]domain.FieldTag, error) {
	tags := make([]domain.FieldTag, 0, len(fields))
	for _, f := range fields {
		if !domain.IsValidFieldTag(f) {
			return nil, fmt.Errorf("unknown subject tag %q: %w", f, apperrors.ErrValidation)
		}
		tags = append(tags, domain.FieldTag(f))
	}
	return tags, nil
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	if req.Year != "" && !domain.IsValidTerm(req.Year) {
		return nil, fmt.Errorf("unknown term %q: %w", req.Year, apperrors.ErrValidation)
	}
	tags, err := toFieldTags(req.Field)
	if err != nil {
		return nil, err
	}
	if req.AdmissionDate != "" {
		if _, ok := domain.CanonicalDMY(req.AdmissionDate); !ok {
			return nil, fmt.Errorf("admission date %q is not DD-MM-YYYY: %w", req.AdmissionDate, apperrors.ErrValidation)
		}
	}

	student := domain.Student{
		StudentID:      req.StudentID,
		Name:           req.Name,
		FatherGuardian: req.FatherGuardian,
		Contact:        req.Contact,
		Whatsapp:       req.Whatsapp,
		Email:          req.Email,
		Address:        req.Address,
		AcademicSchool: req.AcademicSchool,
		AdmissionDate:  req.AdmissionDate,
		Year:           domain.Term(req.Year),
		Field:          tags,
		Photo:          req.Photo,
		Signature:      req.Signature,
	}

	id, err := s.studentRepo.SaveStudent(ctx, student)
	if err != nil {
		s.LogError(ctx, err, "failed to create student", slog.String("student_code", req.StudentID))
		return nil, err
	}
	student.ID = id
	s.LogInfo(ctx, "student enrolled", slog.Int64("id", id), slog.String("student_code", student.StudentID))
	return &student, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*domain.Student, error) {
	return s.studentRepo.FindStudentByID(ctx, id)
}

func (s *studentService) ListStudents(ctx context.Context, params dto.ListStudentsParams) ([]domain.Student, int, error) {
	students, err := s.studentRepo.ListStudents(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list students")
		return nil, 0, err
	}

	filtered := students[:0:0]
	search := strings.ToLower(strings.TrimSpace(params.Search))
	for _, st := range students {
		if search != "" &&
			!strings.Contains(strings.ToLower(st.Name), search) &&
			!strings.Contains(strings.ToLower(st.StudentID), search) {
			continue
		}
		if params.Term != "" && string(st.Year) != params.Term {
			continue
		}
		if params.Field != "" && !hasFieldTag(st.Field, domain.FieldTag(params.Field)) {
			continue
		}
		filtered = append(filtered, st)
	}

	sortStudents(filtered, params.Sort)

	perPage := params.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	totalPages := (len(filtered) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	page := params.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(filtered) {
		return []domain.Student{}, totalPages, nil
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], totalPages, nil
}

func hasFieldTag(tags []domain.FieldTag, want domain.FieldTag) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func sortStudents(students []domain.Student, order string) {
	switch order {
	case "name-asc":
		sort.SliceStable(students, func(i, j int) bool {
			return strings.ToLower(students[i].Name) < strings.ToLower(students[j].Name)
		})
	case "name-desc":
		sort.SliceStable(students, func(i, j int) bool {
			return strings.ToLower(students[i].Name) > strings.ToLower(students[j].Name)
		})
	case "id-desc":
		sort.SliceStable(students, func(i, j int) bool { return students[i].ID > students[j].ID })
	default: // id-asc
		sort.SliceStable(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	}
}

// ListInactiveStudents returns students with no fee payment dated within the
// last months calendar months. Payments with unreadable dates do not count
// as activity.
func (s *studentService) ListInactiveStudents(ctx context.Context, months int) ([]domain.Student, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive: %w", apperrors.ErrValidation)
	}
	students, err := s.studentRepo.ListStudents(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list students")
		return nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments")
		return nil, err
	}

	cutoff := s.now().AddDate(0, -months, 0)
	lastPaid := make(map[string]time.Time, len(students))
	for _, p := range payments {
		when, ok := domain.ParseDMY(p.Date)
		if !ok {
			continue
		}
		if prev, seen := lastPaid[p.StudentID]; !seen || when.After(prev) {
			lastPaid[p.StudentID] = when
		}
	}

	var inactive []domain.Student
	for _, st := range students {
		last, seen := lastPaid[st.StudentID]
		if !seen || last.Before(cutoff) {
			inactive = append(inactive, st)
		}
	}
	return inactive, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentID != nil {
		student.StudentID = *req.StudentID
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.FatherGuardian != nil {
		student.FatherGuardian = *req.FatherGuardian
	}
	if req.Contact != nil {
		student.Contact = *req.Contact
	}
	if req.Whatsapp != nil {
		student.Whatsapp = *req.Whatsapp
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.AcademicSchool != nil {
		student.AcademicSchool = *req.AcademicSchool
	}
	if req.AdmissionDate != nil {
		if *req.AdmissionDate != "" {
			if _, ok := domain.CanonicalDMY(*req.AdmissionDate); !ok {
				return nil, fmt.Errorf("admission date %q is not DD-MM-YYYY: %w", *req.AdmissionDate, apperrors.ErrValidation)
			}
		}
		student.AdmissionDate = *req.AdmissionDate
	}
	if req.Year != nil {
		if *req.Year != "" && !domain.IsValidTerm(*req.Year) {
			return nil, fmt.Errorf("unknown term %q: %w", *req.Year, apperrors.ErrValidation)
		}
		student.Year = domain.Term(*req.Year)
	}
	if req.Field != nil {
		tags, err := toFieldTags(*req.Field)
		if err != nil {
			return nil, err
		}
		student.Field = tags
	}
	if req.Photo != nil {
		student.Photo = *req.Photo
	}
	if req.Signature != nil {
		student.Signature = *req.Signature
	}

	if err := s.studentRepo.UpdateStudent(ctx, *student); err != nil {
		s.LogError(ctx, err, "failed to update student", slog.Int64("id", id))
		return nil, err
	}
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.DeleteStudent(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "student deleted", slog.Int64("id", id))
	return nil
}
