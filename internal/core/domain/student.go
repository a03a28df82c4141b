package domain

// Term is one of the institution's ten named enrollment terms.
type Term string

const (
	TermAdya        Term = "Adya"
	TermMadhya      Term = "Madhya"
	TermPurna       Term = "Purna"
	TermFirstYear   Term = "First Year"
	TermSecondYear  Term = "Second Year"
	TermThirdYear   Term = "Third Year"
	TermFourthYear  Term = "Fourth Year"
	TermFifthYear   Term = "Fifth Year"
	TermSixthYear   Term = "Sixth Year"
	TermSeventhYear Term = "Seventh Year"
)

// Terms lists all valid terms in curriculum order.
var Terms = []Term{
	TermAdya, TermMadhya, TermPurna,
	TermFirstYear, TermSecondYear, TermThirdYear,
	TermFourthYear, TermFifthYear, TermSixthYear, TermSeventhYear,
}

// IsValidTerm reports whether s names a known term.
func IsValidTerm(s string) bool {
	for _, t := range Terms {
		if string(t) == s {
			return true
		}
	}
	return false
}

// FieldTag is a subject tag a student is enrolled in.
type FieldTag string

const (
	FieldPainting   FieldTag = "Painting"
	FieldRecitation FieldTag = "Recitation"
	FieldSinging    FieldTag = "Singing"
)

// FieldTags lists all valid subject tags.
var FieldTags = []FieldTag{FieldPainting, FieldRecitation, FieldSinging}

// IsValidFieldTag reports whether s names a known subject tag.
func IsValidFieldTag(s string) bool {
	for _, f := range FieldTags {
		if string(f) == s {
			return true
		}
	}
	return false
}

// Student is an enrolled (or previously enrolled) student. StudentID is the
// human-readable code payments and donations reference; it is unique by
// convention only, never enforced, so legacy data with repeated codes loads
// unchanged. Photo and Signature hold already-encoded data-URL strings
// captured by the UI.
type Student struct {
	ID             int64      `json:"id"`
	StudentID      string     `json:"studentId"`
	Name           string     `json:"name"`
	FatherGuardian string     `json:"fatherGuardian"`
	Contact        string     `json:"contact"`
	Whatsapp       string     `json:"whatsapp"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	AcademicSchool string     `json:"academicSchool"`
	AdmissionDate  string     `json:"admissionDate"`
	Year           Term       `json:"year"`
	Field          []FieldTag `json:"field"`
	Photo          string     `json:"photo"`
	Signature      string     `json:"signature"`
}
