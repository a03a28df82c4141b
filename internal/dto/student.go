package dto

import (
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// CreateStudentRequest defines the data needed to enroll a student.
// Photo/Signature arrive as already-encoded data-URL strings.
type CreateStudentRequest struct {
	StudentID      string   `json:"studentId" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	FatherGuardian string   `json:"fatherGuardian"`
	Contact        string   `json:"contact"`
	Whatsapp       string   `json:"whatsapp"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	AcademicSchool string   `json:"academicSchool"`
	AdmissionDate  string   `json:"admissionDate"`
	Year           string   `json:"year"`
	Field          []string `json:"field"`
	Photo          string   `json:"photo"`
	Signature      string   `json:"signature"`
}

// UpdateStudentRequest defines the data allowed for updating a student.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateStudentRequest struct {
	StudentID      *string   `json:"studentId"`
	Name           *string   `json:"name"`
	FatherGuardian *string   `json:"fatherGuardian"`
	Contact        *string   `json:"contact"`
	Whatsapp       *string   `json:"whatsapp"`
	Email          *string   `json:"email"`
	Address        *string   `json:"address"`
	AcademicSchool *string   `json:"academicSchool"`
	AdmissionDate  *string   `json:"admissionDate"`
	Year           *string   `json:"year"`
	Field          *[]string `json:"field"`
	Photo          *string   `json:"photo"`
	Signature      *string   `json:"signature"`
}

// ListStudentsParams defines query parameters for the student dashboard list.
type ListStudentsParams struct {
	Search  string `form:"search"`
	Term    string `form:"term"`
	Field   string `form:"field"`
	Sort    string `form:"sort,default=id-asc"`
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"perPage,default=10"`
}

// StudentResponse is the API representation of a student.
type StudentResponse struct {
	ID             int64    `json:"id"`
	StudentID      string   `json:"studentId"`
	Name           string   `json:"name"`
	FatherGuardian string   `json:"fatherGuardian"`
	Contact        string   `json:"contact"`
	Whatsapp       string   `json:"whatsapp"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	AcademicSchool string   `json:"academicSchool"`
	AdmissionDate  string   `json:"admissionDate"`
	Year           string   `json:"year"`
	Field          []string `json:"field"`
	Photo          string   `json:"photo"`
	Signature      string   `json:"signature"`
}

// ListStudentsResponse wraps the student list with paging metadata.
type ListStudentsResponse struct {
	Students   []StudentResponse `json:"students"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// ToStudentResponse converts a domain.Student to its API representation.
func ToStudentResponse(s *domain.Student) StudentResponse {
	fields := make([]string, len(s.Field))
	for i, f := range s.Field {
		fields[i] = string(f)
	}
	return StudentResponse{
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
		Field:          fields,
		Photo:          s.Photo,
		Signature:      s.Signature,
	}
}

// ToListStudentsResponse converts a page of students to the list DTO.
func ToListStudentsResponse(students []domain.Student, page, totalPages int) ListStudentsResponse {
	out := make([]StudentResponse, len(students))
	for i := range students {
		out[i] = ToStudentResponse(&students[i])
	}
	return ListStudentsResponse{Students: out, Page: page, TotalPages: totalPages}
}
