package session

import "time"

type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
	StatusNoShow    SessionStatus = "no_show"
)

type Session struct {
	ID          int           `db:"id" json:"id"`
	GymID       int           `db:"gym_id" json:"gym_id"`
	CoachID     int           `db:"coach_id" json:"coach_id"`
	MemberID    *int          `db:"member_id" json:"member_id,omitempty"`
	Title       string        `db:"title" json:"title"`
	ScheduledAt time.Time     `db:"scheduled_at" json:"scheduled_at"`
	DurationMin int           `db:"duration_min" json:"duration_min"`
	Status      SessionStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// Counts feeds the dashboard snapshot.
type Counts struct {
	Today int `db:"today" json:"today"`
	Total int `db:"total" json:"total"`
}

type CreateSessionRequest struct {
	CoachID     int    `json:"coach_id" binding:"required"`
	MemberID    *int   `json:"member_id"`
	Title       string `json:"title" binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status SessionStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no_show"`
}
