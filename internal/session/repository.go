package session

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

const sessionColumns = `id, gym_id, coach_id, member_id, title, scheduled_at, duration_min, status, created_at`

func (r *repository) Create(ctx context.Context, gymID, coachID int, memberID *int, title string, scheduledAt time.Time, durationMin int) (*Session, error) {
	query := `
		INSERT INTO sessions (gym_id, coach_id, member_id, title, scheduled_at, duration_min, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'scheduled')
		RETURNING ` + sessionColumns

	var s Session
	err := r.db.GetContext(ctx, &s, query, gymID, coachID, memberID, title, scheduledAt, durationMin)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, gymID, id int) (*Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1 AND gym_id = $2
	`

	var s Session
	err := r.db.GetContext(ctx, &s, query, id, gymID)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) List(ctx context.Context, gymID int) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE gym_id = $1
		ORDER BY scheduled_at DESC
	`

	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, query, gymID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) UpdateStatus(ctx context.Context, gymID, id int, status SessionStatus) (*Session, error) {
	query := `
		UPDATE sessions
		SET status = $1
		WHERE id = $2 AND gym_id = $3
		RETURNING ` + sessionColumns

	var s Session
	err := r.db.GetContext(ctx, &s, query, status, id, gymID)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) CountForGym(ctx context.Context, gymID int, dayStart, dayEnd time.Time) (*Counts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE scheduled_at >= $2 AND scheduled_at < $3 AND status <> 'cancelled') AS today,
			COUNT(*) AS total
		FROM sessions
		WHERE gym_id = $1
	`

	var counts Counts
	err := r.db.GetContext(ctx, &counts, query, gymID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
