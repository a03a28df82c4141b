package services

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
)

// AdminAuthSvc is the session gate: it matches submitted credentials against
// stored admin records.
type AdminAuthSvc interface {
	// Authenticate returns the admin for valid credentials and
	// apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, username, password string) (*domain.Admin, error)
}

// AdminManagementSvc defines CRUD over admin records. Every mutation stamps
// modifiedBy with the acting admin and modifiedAt with the current time.
type AdminManagementSvc interface {
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, actor string) (*domain.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, req dto.UpdateAdminRequest, actor string) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error

	// EnsureSeedAdmin creates the configured bootstrap admin when the admins
	// table is empty. A no-op otherwise, or when username/password are blank.
	EnsureSeedAdmin(ctx context.Context, username, password, displayName string) error
}

// AdminSvcFacade combines all admin-related service interfaces.
type AdminSvcFacade interface {
	AdminAuthSvc
	AdminManagementSvc
}
