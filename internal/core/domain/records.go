package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a fee collection against a student. StudentID is the student's
// human-readable code, a denormalized reference; a payment may outlive its
// student record and must still aggregate and print.
type Payment struct {
	ID        int64           `json:"id"`
	StudentID string          `json:"studentId"`
	Term      Term            `json:"term"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
	Collector string          `json:"collector"`
	Field     []FieldTag      `json:"field"`
}

// RecordDate implements Dated.
func (p Payment) RecordDate() string { return p.Date }

// Expenditure is money paid out by the institution.
type Expenditure struct {
	ID     int64           `json:"id"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	Person string          `json:"person"`
}

// RecordDate implements Dated.
func (e Expenditure) RecordDate() string { return e.Date }

// Donation is a donation received, optionally attributed to a student code.
type Donation struct {
	ID        int64           `json:"id"`
	StudentID string          `json:"studentId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
	Collector string          `json:"collector"`
}

// RecordDate implements Dated.
func (d Donation) RecordDate() string { return d.Date }

// Assistance is financial assistance given out by the institution.
type Assistance struct {
	ID      int64           `json:"id"`
	Date    string          `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Purpose string          `json:"purpose"`
	AddedBy string          `json:"addedBy"`
}

// RecordDate implements Dated.
func (a Assistance) RecordDate() string { return a.Date }

// Admin is a credentialed operator. Password holds a bcrypt hash, never the
// plaintext. ModifiedBy/ModifiedAt are the only audit trail kept.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	ModifiedBy   string    `json:"modifiedBy"`
	ModifiedAt   time.Time `json:"modifiedAt"`
}
