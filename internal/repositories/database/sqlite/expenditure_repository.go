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

type expenditureRepository struct {
	db *sql.DB
}

// NewExpenditureRepository creates a SQLite-backed expenditure repository.
func NewExpenditureRepository(db *sql.DB) portrepo.ExpenditureRepository {
	return &expenditureRepository{db: db}
}

func expenditureToModel(e domain.Expenditure) models.Expenditure {
	return models.Expenditure{
		ID:     e.ID,
		Date:   e.Date,
		Amount: e.Amount.String(),
		Reason: e.Reason,
		Person: e.Person,
	}
}

func expenditureToDomain(m models.Expenditure) (domain.Expenditure, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Expenditure{}, fmt.Errorf("parse expenditure amount %q: %w", m.Amount, err)
	}
	return domain.Expenditure{
		ID:     m.ID,
		Date:   m.Date,
		Amount: amount,
		Reason: m.Reason,
		Person: m.Person,
	}, nil
}

func (r *expenditureRepository) SaveExpenditure(ctx context.Context, expenditure domain.Expenditure) (int64, error) {
	m := expenditureToModel(expenditure)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO expenditures (date, amount, reason, person) VALUES (?, ?, ?, ?)`,
		m.Date, m.Amount, m.Reason, m.Person)
	if err != nil {
		return 0, fmt.Errorf("insert expenditure: %w", err)
	}
	return res.LastInsertId()
}

func (r *expenditureRepository) FindExpenditureByID(ctx context.Context, id int64) (*domain.Expenditure, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, date, amount, reason, person FROM expenditures WHERE id = ?`, id)
	var m models.Expenditure
	if err := row.Scan(&m.ID, &m.Date, &m.Amount, &m.Reason, &m.Person); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find expenditure by id: %w", err)
	}
	e, err := expenditureToDomain(m)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expenditureRepository) ListExpenditures(ctx context.Context) ([]domain.Expenditure, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, date, amount, reason, person FROM expenditures ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}
	defer rows.Close()

	var expenditures []domain.Expenditure
	for rows.Next() {
		var m models.Expenditure
		if err := rows.Scan(&m.ID, &m.Date, &m.Amount, &m.Reason, &m.Person); err != nil {
			return nil, fmt.Errorf("scan expenditure: %w", err)
		}
		e, err := expenditureToDomain(m)
		if err != nil {
			return nil, err
		}
		expenditures = append(expenditures, e)
	}
	return expenditures, rows.Err()
}

func (r *expenditureRepository) UpdateExpenditure(ctx context.Context, id int64, expenditure domain.Expenditure) error {
	m := expenditureToModel(expenditure)
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenditures SET date = ?, amount = ?, reason = ?, person = ? WHERE id = ?`,
		m.Date, m.Amount, m.Reason, m.Person, id)
	if err != nil {
		return fmt.Errorf("update expenditure: %w", err)
	}
	return requireRowAffected(res)
}

func (r *expenditureRepository) DeleteExpenditure(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenditures WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expenditure: %w", err)
	}
	return requireRowAffected(res)
}
