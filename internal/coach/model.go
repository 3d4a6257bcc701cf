package coach

import "time"

// Coach counters are denormalized for display and recomputed from the
// source tables on every relevant mutation, never incremented in place.
type Coach struct {
	ID                int       `db:"id" json:"id"`
	GymID             int       `db:"gym_id" json:"gym_id"`
	Name              string    `db:"name" json:"name"`
	Email             string    `db:"email" json:"email"`
	Specialty         string    `db:"specialty" json:"specialty"`
	Active            bool      `db:"active" json:"active"`
	ClientCount       int       `db:"client_count" json:"client_count"`
	SessionsThisMonth int       `db:"sessions_this_month" json:"sessions_this_month"`
	RevenueThisMonth  int64     `db:"revenue_this_month" json:"revenue_this_month"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCoachRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty"`
}

type UpdateCoachRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty"`
	Active    *bool  `json:"active" binding:"required"`
}
