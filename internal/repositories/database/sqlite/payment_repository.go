package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portrepo "github.com/kabitalok/kabitalok-payments/internal/core/ports/repositories"
	"github.com/kabitalok/kabitalok-payments/internal/models"
)

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a SQLite-backed payment repository.
func NewPaymentRepository(db *sql.DB) portrepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func paymentToModel(p domain.Payment) (models.Payment, error) {
	fieldJSON, err := json.Marshal(p.Field)
	if err != nil {
		return models.Payment{}, fmt.Errorf("marshal field tags: %w", err)
	}
	return models.Payment{
		ID:        p.ID,
		StudentID: p.StudentID,
		Term:      string(p.Term),
		Amount:    p.Amount.String(),
		Date:      p.Date,
		Note:      p.Note,
		Collector: p.Collector,
		Field:     string(fieldJSON),
	}, nil
}

func paymentToDomain(m models.Payment) (domain.Payment, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("parse payment amount %q: %w", m.Amount, err)
	}
	var tags []domain.FieldTag
	if err := json.Unmarshal([]byte(m.Field), &tags); err != nil {
		tags = nil
	}
	return domain.Payment{
		ID:        m.ID,
		StudentID: m.StudentID,
		Term:      domain.Term(m.Term),
		Amount:    amount,
		Date:      m.Date,
		Note:      m.Note,
		Collector: m.Collector,
		Field:     tags,
	}, nil
}

const paymentColumns = `id, student_id, term, amount, date, note, collector, field`

func scanPayment(row interface{ Scan(dest ...any) error }) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(&m.ID, &m.StudentID, &m.Term, &m.Amount, &m.Date, &m.Note, &m.Collector, &m.Field)
	return m, err
}

func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	m, err := paymentToModel(payment)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (student_id, term, amount, date, note, collector, field)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.StudentID, m.Term, m.Amount, m.Date, m.Note, m.Collector, m.Field)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}
	return res.LastInsertId()
}

func (r *paymentRepository) FindPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	m, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find payment by id: %w", err)
	}
	p, err := paymentToDomain(m)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return r.queryPayments(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *paymentRepository) ListPaymentsByStudent(ctx context.Context, studentID string, term domain.Term) ([]domain.Payment, error) {
	return r.queryPayments(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE student_id = ? AND term = ? ORDER BY id`,
		studentID, string(term))
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p, err := paymentToDomain(m)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, id int64, payment domain.Payment) error {
	m, err := paymentToModel(payment)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments SET amount = ?, note = ? WHERE id = ?`,
		m.Amount, m.Note, id)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return requireRowAffected(res)
}

func (r *paymentRepository) DeletePayment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return requireRowAffected(res)
}
