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

type donationRepository struct {
	db *sql.DB
}

// NewDonationRepository creates a SQLite-backed donation repository.
func NewDonationRepository(db *sql.DB) portrepo.DonationRepository {
	return &donationRepository{db: db}
}

func donationToModel(d domain.Donation) models.Donation {
	return models.Donation{
		ID:        d.ID,
		StudentID: d.StudentID,
		Amount:    d.Amount.String(),
		Date:      d.Date,
		Note:      d.Note,
		Collector: d.Collector,
	}
}

func donationToDomain(m models.Donation) (domain.Donation, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("parse donation amount %q: %w", m.Amount, err)
	}
	return domain.Donation{
		ID:        m.ID,
		StudentID: m.StudentID,
		Amount:    amount,
		Date:      m.Date,
		Note:      m.Note,
		Collector: m.Collector,
	}, nil
}

func (r *donationRepository) SaveDonation(ctx context.Context, donation domain.Donation) (int64, error) {
	m := donationToModel(donation)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (student_id, amount, date, note, collector) VALUES (?, ?, ?, ?, ?)`,
		m.StudentID, m.Amount, m.Date, m.Note, m.Collector)
	if err != nil {
		return 0, fmt.Errorf("insert donation: %w", err)
	}
	return res.LastInsertId()
}

func (r *donationRepository) FindDonationByID(ctx context.Context, id int64) (*domain.Donation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, amount, date, note, collector FROM donations WHERE id = ?`, id)
	var m models.Donation
	if err := row.Scan(&m.ID, &m.StudentID, &m.Amount, &m.Date, &m.Note, &m.Collector); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find donation by id: %w", err)
	}
	d, err := donationToDomain(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *donationRepository) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, student_id, amount, date, note, collector FROM donations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var m models.Donation
		if err := rows.Scan(&m.ID, &m.StudentID, &m.Amount, &m.Date, &m.Note, &m.Collector); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		d, err := donationToDomain(m)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) UpdateDonation(ctx context.Context, id int64, donation domain.Donation) error {
	m := donationToModel(donation)
	res, err := r.db.ExecContext(ctx, `
		UPDATE donations SET student_id = ?, amount = ?, date = ?, note = ?, collector = ? WHERE id = ?`,
		m.StudentID, m.Amount, m.Date, m.Note, m.Collector, id)
	if err != nil {
		return fmt.Errorf("update donation: %w", err)
	}
	return requireRowAffected(res)
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	return requireRowAffected(res)
}
