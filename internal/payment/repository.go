package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, gym_id, member_id, amount_cents, status, due_date, paid_date, created_at`

func (r *repository) Create(ctx context.Context, gymID, memberID int, amountCents int64, dueDate *time.Time) (*Payment, error) {
	query := `
		INSERT INTO payments (gym_id, member_id, amount_cents, status, due_date)
		VALUES ($1, $2, $3, 'pending', $4)
		RETURNING ` + paymentColumns

	var p Payment
	err := r.db.GetContext(ctx, &p, query, gymID, memberID, amountCents, dueDate)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1 AND gym_id = $2
	`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, gymID int) ([]Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, gymID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) MarkPaid(ctx context.Context, gymID, id int, paidDate time.Time) (*Payment, error) {
	query := `
		UPDATE payments
		SET status = 'paid', paid_date = $1
		WHERE id = $2 AND gym_id = $3
		RETURNING ` + paymentColumns

	var p Payment
	err := r.db.GetContext(ctx, &p, query, paidDate, id, gymID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) MarkOverdue(ctx context.Context, gymID, id int) (*Payment, error) {
	query := `
		UPDATE payments
		SET status = 'overdue'
		WHERE id = $1 AND gym_id = $2
		RETURNING ` + paymentColumns

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
