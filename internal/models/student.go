package models

// Student is the database row shape for a student. Field tags are stored as
// a JSON array in a TEXT column; photo and signature hold data URLs.
type Student struct {
	ID             int64
	StudentID      string
	Name           string
	FatherGuardian string
	Contact        string
	Whatsapp       string
	Email          string
	Address        string
	AcademicSchool string
	AdmissionDate  string
	Year           string
	Field          string
	Photo          string
	Signature      string
}
