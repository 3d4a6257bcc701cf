package alert

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrAlertNotFound = errors.New("alert not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, gymID int, alertType, severity, message string) (*Alert, error) {
	query := `
		INSERT INTO alerts (gym_id, type, severity, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, type, severity, message, read, created_at
	`

	var a Alert
	err := r.db.GetContext(ctx, &a, query, gymID, alertType, severity, message)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) ListUnread(ctx context.Context, gymID int) ([]Alert, error) {
	query := `
		SELECT id, gym_id, type, severity, message, read, created_at
		FROM alerts
		WHERE gym_id = $1 AND read = FALSE
		ORDER BY created_at DESC
	`

	var alerts []Alert
	err := r.db.SelectContext(ctx, &alerts, query, gymID)
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

func (r *repository) MarkRead(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE alerts SET read = TRUE
		WHERE id = $1 AND gym_id = $2 AND read = FALSE
	`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *repository) MarkAllRead(ctx context.Context, gymID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE alerts SET read = TRUE
		WHERE gym_id = $1 AND read = FALSE
	`, gymID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
