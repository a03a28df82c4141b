package models

// Payment is the database row shape for a fee payment. Amount is stored as a
// decimal string and the student reference is the human-readable student code.
type Payment struct {
	ID        int64
	StudentID string
	Term      string
	Amount    string
	Date      string
	Note      string
	Collector string
	Field     string
}

// Expenditure is the database row shape for an expenditure entry.
type Expenditure struct {
	ID     int64
	Date   string
	Amount string
	Reason string
	Person string
}

// Donation is the database row shape for a donation entry.
type Donation struct {
	ID        int64
	StudentID string
	Amount    string
	Date      string
	Note      string
	Collector string
}

// Assistance is the database row shape for a financial assistance entry.
type Assistance struct {
	ID      int64
	Date    string
	Amount  string
	Purpose string
	AddedBy string
}
