package repositories

import (
	"context"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

// AdminRepository defines persistence operations for admin credentials.
type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin domain.Admin) (int64, error)
	FindAdminByID(ctx context.Context, id int64) (*domain.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
	UpdateAdmin(ctx context.Context, admin domain.Admin) error
	DeleteAdmin(ctx context.Context, id int64) error
}
