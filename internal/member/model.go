package member

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusModerate Status = "moderate"
	StatusInactive Status = "inactive"
)

const (
	// A member counts as active for a week after their last check-in,
	// moderate for a month, inactive after that.
	activeWindow   = 7 * 24 * time.Hour
	moderateWindow = 30 * 24 * time.Hour
)

// StatusFor derives the activity tier from visit recency. A member who has
// never visited is inactive.
func StatusFor(lastVisit *time.Time, now time.Time) Status {
	if lastVisit == nil {
		return StatusInactive
	}

	since := now.Sub(*lastVisit)
	switch {
	case since <= activeWindow:
		return StatusActive
	case since <= moderateWindow:
		return StatusModerate
	default:
		return StatusInactive
	}
}

type MembershipTier string

const (
	TierBasic    MembershipTier = "basic"
	TierStandard MembershipTier = "standard"
	TierPremium  MembershipTier = "premium"
)

type Member struct {
	ID              int            `db:"id" json:"id"`
	GymID           int            `db:"gym_id" json:"gym_id"`
	Name            string         `db:"name" json:"name"`
	Email           string         `db:"email" json:"email"`
	CoachID         *int           `db:"coach_id" json:"coach_id,omitempty"`
	MembershipTier  MembershipTier `db:"membership_tier" json:"membership_tier"`
	MonthlyFeeCents int64          `db:"monthly_fee_cents" json:"monthly_fee_cents"`
	ActivityStatus  Status         `db:"activity_status" json:"activity_status"`
	LastVisit       *time.Time     `db:"last_visit" json:"last_visit,omitempty"`
	TotalVisits     int            `db:"total_visits" json:"total_visits"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// StatusCounts holds the per-tier member counts for one gym.
type StatusCounts struct {
	Total    int `db:"total" json:"total"`
	Active   int `db:"active" json:"active"`
	Moderate int `db:"moderate" json:"moderate"`
	Inactive int `db:"inactive" json:"inactive"`
}

// StatusTransition is one member whose persisted status changed during a
// sweep.
type StatusTransition struct {
	MemberID  int    `db:"id"`
	GymID     int    `db:"gym_id"`
	Name      string `db:"name"`
	NewStatus Status `db:"activity_status"`
}

type CreateMemberRequest struct {
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	CoachID         *int           `json:"coach_id"`
	MembershipTier  MembershipTier `json:"membership_tier" binding:"required,oneof=basic standard premium"`
	MonthlyFeeCents int64          `json:"monthly_fee_cents" binding:"required,gte=0"`
}

type UpdateMemberRequest struct {
	Name            string         `json:"name" binding:"required"`
	Email           string         `json:"email" binding:"required,email"`
	CoachID         *int           `json:"coach_id"`
	MembershipTier  MembershipTier `json:"membership_tier" binding:"required,oneof=basic standard premium"`
	MonthlyFeeCents int64          `json:"monthly_fee_cents" binding:"required,gte=0"`
}
