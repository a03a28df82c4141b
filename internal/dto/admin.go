package dto

import (
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// LoginRequest carries submitted credentials for the session gate.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// CreateAdminRequest defines the data needed to create an admin.
type CreateAdminRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

// UpdateAdminRequest defines the fields an admin edit may change.
type UpdateAdminRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	DisplayName *string `json:"displayName"`
}

// AdminResponse is the API representation of an admin. The password hash
// never leaves the service layer.
type AdminResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	ModifiedBy  string    `json:"modifiedBy"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

// ToAdminResponse converts a domain.Admin.
func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		ModifiedBy:  a.ModifiedBy,
		ModifiedAt:  a.ModifiedAt,
	}
}

// ToAdminResponses converts a slice of admins.
func ToAdminResponses(as []domain.Admin) []AdminResponse {
	out := make([]AdminResponse, len(as))
	for i := range as {
		out[i] = ToAdminResponse(&as[i])
	}
	return out
}
