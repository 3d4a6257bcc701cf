package visit

import "time"

// Visit is an append-only check-in event. Rows are never updated or
// deleted.
type Visit struct {
	ID             int       `db:"id" json:"id"`
	GymID          int       `db:"gym_id" json:"gym_id"`
	MemberID       int       `db:"member_id" json:"member_id"`
	IdempotencyKey string    `db:"idempotency_key" json:"idempotency_key"`
	CheckedInAt    time.Time `db:"checked_in_at" json:"checked_in_at"`
}

type CheckInRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}

type CheckInResponse struct {
	Visit          *Visit `json:"visit"`
	ActivityStatus string `json:"activity_status" example:"active"`
	TotalVisits    int    `json:"total_visits"`
}
