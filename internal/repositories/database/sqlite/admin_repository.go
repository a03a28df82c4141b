package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	"github.com/kabitalok/kabitalok-payments/internal/models"
)

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a SQLite-backed admin repository.
func NewAdminRepository(db *sql.DB) portrepo.AdminRepository {
	return &adminRepository{db: db}
}

func adminToModel(a domain.Admin) models.Admin {
	return models.Admin{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		DisplayName:  a.DisplayName,
		ModifiedBy:   a.ModifiedBy,
		ModifiedAt:   a.ModifiedAt.UTC().Format(time.RFC3339),
	}
}

func adminToDomain(m models.Admin) domain.Admin {
	modifiedAt, err := time.Parse(time.RFC3339, m.ModifiedAt)
	if err != nil {
		modifiedAt = time.Time{}
	}
	return domain.Admin{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		ModifiedBy:   m.ModifiedBy,
		ModifiedAt:   modifiedAt,
	}
}

const adminColumns = `id, username, password_hash, display_name, modified_by, modified_at`

func scanAdmin(row interface{ Scan(dest ...any) error }) (models.Admin, error) {
	var m models.Admin
	err := row.Scan(&m.ID, &m.Username, &m.PasswordHash, &m.DisplayName, &m.ModifiedBy, &m.ModifiedAt)
	return m, err
}

func (r *adminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) (int64, error) {
	m := adminToModel(admin)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash, display_name, modified_by, modified_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.Username, m.PasswordHash, m.DisplayName, m.ModifiedBy, m.ModifiedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("username %s: %w", admin.Username, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert admin: %w", err)
	}
	return res.LastInsertId()
}

func (r *adminRepository) FindAdminByID(ctx context.Context, id int64) (*domain.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	m, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	a := adminToDomain(m)
	return &a, nil
}

func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = ?`, username)
	m, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	a := adminToDomain(m)
	return &a, nil
}

func (r *adminRepository) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		m, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, adminToDomain(m))
	}
	return admins, rows.Err()
}

func (r *adminRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

func (r *adminRepository) UpdateAdmin(ctx context.Context, admin domain.Admin) error {
	m := adminToModel(admin)
	res, err := r.db.ExecContext(ctx, `
		UPDATE admins SET username = ?, password_hash = ?, display_name = ?, modified_by = ?, modified_at = ?
		WHERE id = ?`,
		m.Username, m.PasswordHash, m.DisplayName, m.ModifiedBy, m.ModifiedAt, m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %s: %w", admin.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("update admin: %w", err)
	}
	return requireRowAffected(res)
}

func (r *adminRepository) DeleteAdmin(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return requireRowAffected(res)
}
