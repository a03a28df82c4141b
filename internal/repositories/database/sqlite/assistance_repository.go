package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	"github.com/kabitalok/kabitalok-payments/internal/models"
)

type assistanceRepository struct {
	db *sql.DB
}

// NewAssistanceRepository creates a SQLite-backed financial assistance
// repository.
func NewAssistanceRepository(db *sql.DB) portrepo.AssistanceRepository {
	return &assistanceRepository{db: db}
}

func assistanceToModel(a domain.Assistance) models.Assistance {
	return models.Assistance{
		ID:      a.ID,
		Date:    a.Date,
		Amount:  a.Amount.String(),
		Purpose: a.Purpose,
		AddedBy: a.AddedBy,
	}
}

func assistanceToDomain(m models.Assistance) (domain.Assistance, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Assistance{}, fmt.Errorf("parse assistance amount %q: %w", m.Amount, err)
	}
	return domain.Assistance{
		ID:      m.ID,
		Date:    m.Date,
		Amount:  amount,
		Purpose: m.Purpose,
		AddedBy: m.AddedBy,
	}, nil
}

func (r *assistanceRepository) SaveAssistance(ctx context.Context, assistance domain.Assistance) (int64, error) {
	m := assistanceToModel(assistance)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO assistance (date, amount, purpose, added_by) VALUES (?, ?, ?, ?)`,
		m.Date, m.Amount, m.Purpose, m.AddedBy)
	if err != nil {
		return 0, fmt.Errorf("insert assistance: %w", err)
	}
	return res.LastInsertId()
}

func (r *assistanceRepository) FindAssistanceByID(ctx context.Context, id int64) (*domain.Assistance, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, date, amount, purpose, added_by FROM assistance WHERE id = ?`, id)
	var m models.Assistance
	if err := row.Scan(&m.ID, &m.Date, &m.Amount, &m.Purpose, &m.AddedBy); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find assistance by id: %w", err)
	}
	a, err := assistanceToDomain(m)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assistanceRepository) ListAssistance(ctx context.Context) ([]domain.Assistance, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, date, amount, purpose, added_by FROM assistance ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list assistance: %w", err)
	}
	defer rows.Close()

	var entries []domain.Assistance
	for rows.Next() {
		var m models.Assistance
		if err := rows.Scan(&m.ID, &m.Date, &m.Amount, &m.Purpose, &m.AddedBy); err != nil {
			return nil, fmt.Errorf("scan assistance: %w", err)
		}
		a, err := assistanceToDomain(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}

func (r *assistanceRepository) UpdateAssistance(ctx context.Context, id int64, assistance domain.Assistance) error {
	m := assistanceToModel(assistance)
	res, err := r.db.ExecContext(ctx, `
		UPDATE assistance SET date = ?, amount = ?, purpose = ?, added_by = ? WHERE id = ?`,
		m.Date, m.Amount, m.Purpose, m.AddedBy, id)
	if err != nil {
		return fmt.Errorf("update assistance: %w", err)
	}
	return requireRowAffected(res)
}

func (r *assistanceRepository) DeleteAssistance(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assistance WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete assistance: %w", err)
	}
	return requireRowAffected(res)
}
