package visit

import (
	"context"
	"errors"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(ctx context.Context, gymID, memberID int, at time.Time, idempotencyKey string, status member.Status) (*Visit, int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var v Visit
	err = tx.GetContext(ctx, &v, `
		INSERT INTO visits (gym_id, member_id, idempotency_key, checked_in_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, member_id, idempotency_key, checked_in_at
	`, gymID, memberID, idempotencyKey, at)
	if err != nil {
		return nil, 0, err
	}

	var totalVisits int
	err = tx.GetContext(ctx, &totalVisits, `
		UPDATE members
		SET total_visits = total_visits + 1,
			last_visit = $1,
			activity_status = $2,
			updated_at = NOW()
		WHERE id = $3 AND gym_id = $4
		RETURNING total_visits
	`, at, status, memberID, gymID)
	if err != nil {
		return nil, 0, ErrMemberNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	return &v, totalVisits, nil
}

func (r *repository) ListByMember(ctx context.Context, gymID, memberID int) ([]Visit, error) {
	query := `
		SELECT id, gym_id, member_id, idempotency_key, checked_in_at
		FROM visits
		WHERE gym_id = $1 AND member_id = $2
		ORDER BY checked_in_at DESC
	`

	var visits []Visit
	err := r.db.SelectContext(ctx, &visits, query, gymID, memberID)
	if err != nil {
		return nil, err
	}

	return visits, nil
}
