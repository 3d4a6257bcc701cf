package payment

import "time"

type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID          int           `db:"id" json:"id"`
	GymID       int           `db:"gym_id" json:"gym_id"`
	MemberID    int           `db:"member_id" json:"member_id"`
	AmountCents int64         `db:"amount_cents" json:"amount_cents"`
	Status      PaymentStatus `db:"status" json:"status"`
	DueDate     *time.Time    `db:"due_date" json:"due_date,omitempty"`
	PaidDate    *time.Time    `db:"paid_date" json:"paid_date,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

type CreatePaymentRequest struct {
	MemberID    int    `json:"member_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	DueDate     string `json:"due_date"`
}

// Totals are derived at read time from the gym's payment rows and never
// persisted.
type Totals struct {
	RevenueThisMonthCents int64 `json:"revenueThisMonth"`
	PendingAmountCents    int64 `json:"pendingAmount"`
	OverdueAmountCents    int64 `json:"overdueAmount"`
	PendingCount          int   `json:"pendingCount"`
	OverdueCount          int   `json:"overdueCount"`
}

type MonthRevenue struct {
	Month       string `json:"month" example:"2026-08"`
	AmountCents int64  `json:"amount_cents"`
}
