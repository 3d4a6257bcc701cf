package member

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNoRowsAffected = errors.New("no rows affected")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const memberColumns = `id, gym_id, name, email, coach_id, membership_tier, monthly_fee_cents,
		activity_status, last_visit, total_visits, created_at, updated_at`

func (r *repository) Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	query := `
		INSERT INTO members (gym_id, name, email, coach_id, membership_tier, monthly_fee_cents, activity_status)
		VALUES ($1, $2, $3, $4, $5, $6, 'inactive')
		RETURNING ` + memberColumns

	var m Member
	err := r.db.GetContext(ctx, &m, query,
		gymID, req.Name, req.Email, req.CoachID, req.MembershipTier, req.MonthlyFeeCents)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE id = $1 AND gym_id = $2
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) List(ctx context.Context, gymID int) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE gym_id = $1
		ORDER BY name ASC
	`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query, gymID)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	query := `
		UPDATE members
		SET name = $1, email = $2, coach_id = $3, membership_tier = $4,
			monthly_fee_cents = $5, updated_at = NOW()
		WHERE id = $6 AND gym_id = $7
		RETURNING ` + memberColumns

	var m Member
	err := r.db.GetContext(ctx, &m, query,
		req.Name, req.Email, req.CoachID, req.MembershipTier, req.MonthlyFeeCents, id, gymID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Delete(ctx context.Context, gymID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM members WHERE id = $1 AND gym_id = $2`, id, gymID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (r *repository) CountByStatus(ctx context.Context, gymID int) (*StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE activity_status = 'active')   AS active,
			COUNT(*) FILTER (WHERE activity_status = 'moderate') AS moderate,
			COUNT(*) FILTER (WHERE activity_status = 'inactive') AS inactive
		FROM members
		WHERE gym_id = $1
	`

	var counts StatusCounts
	err := r.db.GetContext(ctx, &counts, query, gymID)
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *repository) MonthlyRecurringRevenue(ctx context.Context, gymID int) (int64, error) {
	query := `
		SELECT COALESCE(SUM(monthly_fee_cents), 0)
		FROM members
		WHERE gym_id = $1 AND activity_status = 'active'
	`

	var mrr int64
	err := r.db.GetContext(ctx, &mrr, query, gymID)
	if err != nil {
		return 0, err
	}

	return mrr, nil
}

// ReclassifyStale recomputes activity_status for every member whose
// persisted status no longer matches their last_visit recency, and returns
// the members it changed. The thresholds mirror StatusFor.
func (r *repository) ReclassifyStale(ctx context.Context, now time.Time) ([]StatusTransition, error) {
	activeSince := now.Add(-activeWindow)
	moderateSince := now.Add(-moderateWindow)

	query := `
		UPDATE members
		SET activity_status = CASE
				WHEN last_visit IS NULL THEN 'inactive'
				WHEN last_visit >= $1 THEN 'active'
				WHEN last_visit >= $2 THEN 'moderate'
				ELSE 'inactive'
			END,
			updated_at = NOW()
		WHERE activity_status <> CASE
				WHEN last_visit IS NULL THEN 'inactive'
				WHEN last_visit >= $1 THEN 'active'
				WHEN last_visit >= $2 THEN 'moderate'
				ELSE 'inactive'
			END
		RETURNING id, gym_id, name, activity_status
	`

	var transitions []StatusTransition
	err := r.db.SelectContext(ctx, &transitions, query, activeSince, moderateSince)
	if err != nil {
		return nil, err
	}

	return transitions, nil
}
