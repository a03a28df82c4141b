package models

// Admin is the database row shape for an admin account. ModifiedAt is stored
// as an RFC 3339 string.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
	ModifiedBy   string
	ModifiedAt   string
}
