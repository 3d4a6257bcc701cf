package coach

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

const coachColumns = `id, gym_id, name, email, specialty, active, client_count,
		sessions_this_month, revenue_this_month, created_at, updated_at`

func (r *repository) Create(ctx context.Context, gymID int, req CreateCoachRequest) (*Coach, error) {
	query := `
		INSERT INTO coaches (gym_id, name, email, specialty)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + coachColumns

	var c Coach
	err := r.db.GetContext(ctx, &c, query, gymID, req.Name, req.Email, req.Specialty)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches
		WHERE id = $1 AND gym_id = $2
	`

	var c Coach
	err := r.db.GetContext(ctx, &c, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context, gymID int) ([]Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches
		WHERE gym_id = $1
		ORDER BY name ASC
	`

	var coaches []Coach
	err := r.db.SelectContext(ctx, &coaches, query, gymID)
	if err != nil {
		return nil, err
	}

	return coaches, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, req UpdateCoachRequest) (*Coach, error) {
	query := `
		UPDATE coaches
		SET name = $1, email = $2, specialty = $3, active = $4, updated_at = NOW()
		WHERE id = $5 AND gym_id = $6
		RETURNING ` + coachColumns

	var c Coach
	err := r.db.GetContext(ctx, &c, query, req.Name, req.Email, req.Specialty, *req.Active, id, gymID)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Recalculate recounts the coach's aggregates from the source-of-truth
// tables. Pure recount, never an incremental adjustment, so the counters
// cannot drift.
func (r *repository) Recalculate(ctx context.Context, gymID, id int, monthStart, monthEnd time.Time) (*Coach, error) {
	query := `
		UPDATE coaches c
		SET client_count = (
				SELECT COUNT(*) FROM members m
				WHERE m.coach_id = c.id AND m.gym_id = c.gym_id
			),
			sessions_this_month = (
				SELECT COUNT(*) FROM sessions s
				WHERE s.coach_id = c.id AND s.gym_id = c.gym_id
					AND s.status <> 'cancelled'
					AND s.scheduled_at >= $3 AND s.scheduled_at < $4
			),
			revenue_this_month = (
				SELECT COALESCE(SUM(p.amount_cents), 0)
				FROM payments p
				JOIN members m ON m.id = p.member_id
				WHERE m.coach_id = c.id AND p.gym_id = c.gym_id
					AND p.status = 'paid'
					AND p.paid_date >= $3 AND p.paid_date < $4
			),
			updated_at = NOW()
		WHERE c.id = $1 AND c.gym_id = $2
		RETURNING ` + coachColumns

	var c Coach
	err := r.db.GetContext(ctx, &c, query, id, gymID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
