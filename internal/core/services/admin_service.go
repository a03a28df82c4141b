package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/utils"
)

type adminService struct {
	BaseService
	adminRepo portrepo.AdminRepository
	now       func() time.Time
}

// AdminServiceOption customizes an admin service.
type AdminServiceOption func(*adminService)

// WithAdminClock overrides the wall clock used for modifiedAt stamps.
func WithAdminClock(now func() time.Time) AdminServiceOption {
	return func(s *adminService) { s.now = now }
}

// NewAdminService creates the admin credential service.
func NewAdminService(adminRepo portrepo.AdminRepository, opts ...AdminServiceOption) portssvc.AdminSvcFacade {
	s := &adminService{adminRepo: adminRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate matches credentials against stored admins. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *adminService) Authenticate(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up admin", slog.String("username", username))
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return admin, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, actor string) (*domain.Admin, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := domain.Admin{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		ModifiedBy:   actor,
		ModifiedAt:   s.now(),
	}
	id, err := s.adminRepo.SaveAdmin(ctx, admin)
	if err != nil {
		s.LogError(ctx, err, "failed to create admin", slog.String("username", req.Username))
		return nil, err
	}
	admin.ID = id
	s.LogInfo(ctx, "admin created", slog.Int64("id", id), slog.String("username", admin.Username), slog.String("created_by", actor))
	return &admin, nil
}

func (s *adminService) GetAdminByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return s.adminRepo.FindAdminByID(ctx, id)
}

func (s *adminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.adminRepo.ListAdmins(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list admins")
		return nil, err
	}
	if admins == nil {
		return []domain.Admin{}, nil
	}
	return admins, nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, id int64, req dto.UpdateAdminRequest, actor string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		admin.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		admin.PasswordHash = hash
	}
	if req.DisplayName != nil {
		admin.DisplayName = *req.DisplayName
	}
	admin.ModifiedBy = actor
	admin.ModifiedAt = s.now()

	if err := s.adminRepo.UpdateAdmin(ctx, *admin); err != nil {
		s.LogError(ctx, err, "failed to update admin", slog.Int64("id", id))
		return nil, err
	}
	return admin, nil
}

// DeleteAdmin removes an admin record. The last remaining admin cannot be
// deleted, the login would otherwise become unreachable.
func (s *adminService) DeleteAdmin(ctx context.Context, id int64) error {
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("cannot delete the last admin: %w", apperrors.ErrForbidden)
	}
	if err := s.adminRepo.DeleteAdmin(ctx, id); err != nil {
		return err
	}
	s.LogInfo(ctx, "admin deleted", slog.Int64("id", id))
	return nil
}

// EnsureSeedAdmin creates the bootstrap admin when no admin exists yet.
func (s *adminService) EnsureSeedAdmin(ctx context.Context, username, password, displayName string) error {
	if username == "" || password == "" {
		return nil
	}
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	_, err = s.adminRepo.SaveAdmin(ctx, domain.Admin{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		ModifiedBy:   "system",
		ModifiedAt:   s.now(),
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "seed admin created", slog.String("username", username))
	return nil
}
