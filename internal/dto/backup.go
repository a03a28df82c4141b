package dto

import (
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// BackupDocument is the legacy backup file format. Donations and assistance
// are not part of it; the live schema grew after the format was fixed, and
// existing backup files must keep restoring.
type BackupDocument struct {
	Timestamp    time.Time            `json:"timestamp"`
	Students     []domain.Student     `json:"students"`
	Payments     []domain.Payment     `json:"payments"`
	Expenditures []domain.Expenditure `json:"expenditures"`
}
