package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	"github.com/kabitalok/kabitalok-payments/internal/models"
)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a SQLite-backed student repository.
func NewStudentRepository(db *sql.DB) portrepo.StudentRepository {
	return &studentRepository{db: db}
}

func studentToModel(s domain.Student) (models.Student, error) {
	fieldJSON, err := json.Marshal(s.Field)
	if err != nil {
		return models.Student{}, fmt.Errorf("marshal field tags: %w", err)
	}
	return models.Student{
		ID:             s.ID,
		StudentID:      s.StudentID,
		Name:           s.Name,
		FatherGuardian: s.FatherGuardian,
		Contact:        s.Contact,
		Whatsapp:       s.Whatsapp,
		Email:          s.Email,
		Address:        s.Address,
		AcademicSchool: s.AcademicSchool,
		AdmissionDate:  s.AdmissionDate,
		Year:           string(s.Year),
		Field:          string(fieldJSON),
		Photo:          s.Photo,
		Signature:      s.Signature,
	}, nil
}

func studentToDomain(m models.Student) domain.Student {
	var tags []domain.FieldTag
	if err := json.Unmarshal([]byte(m.Field), &tags); err != nil {
		tags = nil
	}
	return domain.Student{
		ID:             m.ID,
		StudentID:      m.StudentID,
		Name:           m.Name,
		FatherGuardian: m.FatherGuardian,
		Contact:        m.Contact,
		Whatsapp:       m.Whatsapp,
		Email:          m.Email,
		Address:        m.Address,
		AcademicSchool: m.AcademicSchool,
		AdmissionDate:  m.AdmissionDate,
		Year:           domain.Term(m.Year),
		Field:          tags,
		Photo:          m.Photo,
		Signature:      m.Signature,
	}
}

const studentColumns = `id, student_id, name, father_guardian, contact, whatsapp, email, address, academic_school, admission_date, year, field, photo, signature`

func scanStudent(row interface{ Scan(dest ...any) error }) (models.Student, error) {
	var m models.Student
	err := row.Scan(&m.ID, &m.StudentID, &m.Name, &m.FatherGuardian, &m.Contact,
		&m.Whatsapp, &m.Email, &m.Address, &m.AcademicSchool, &m.AdmissionDate,
		&m.Year, &m.Field, &m.Photo, &m.Signature)
	return m, err
}

func (r *studentRepository) SaveStudent(ctx context.Context, student domain.Student) (int64, error) {
	m, err := studentToModel(student)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO students (student_id, name, father_guardian, contact, whatsapp, email, address, academic_school, admission_date, year, field, photo, signature)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.StudentID, m.Name, m.FatherGuardian, m.Contact, m.Whatsapp, m.Email,
		m.Address, m.AcademicSchool, m.AdmissionDate, m.Year, m.Field, m.Photo, m.Signature)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}
	return res.LastInsertId()
}

func (r *studentRepository) FindStudentByID(ctx context.Context, id int64) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	m, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	s := studentToDomain(m)
	return &s, nil
}

func (r *studentRepository) FindStudentByCode(ctx context.Context, code string) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE student_id = ?`, code)
	m, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find student by code: %w", err)
	}
	s := studentToDomain(m)
	return &s, nil
}

func (r *studentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, studentToDomain(m))
	}
	return students, rows.Err()
}

func (r *studentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	m, err := studentToModel(student)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE students
		SET student_id = ?, name = ?, father_guardian = ?, contact = ?, whatsapp = ?, email = ?, address = ?, academic_school = ?, admission_date = ?, year = ?, field = ?, photo = ?, signature = ?
		WHERE id = ?`,
		m.StudentID, m.Name, m.FatherGuardian, m.Contact, m.Whatsapp, m.Email,
		m.Address, m.AcademicSchool, m.AdmissionDate, m.Year, m.Field, m.Photo, m.Signature, m.ID)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return requireRowAffected(res)
}

func (r *studentRepository) DeleteStudent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return requireRowAffected(res)
}
