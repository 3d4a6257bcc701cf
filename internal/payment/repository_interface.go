package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, gymID, memberID int, amountCents int64, dueDate *time.Time) (*Payment, error)
	GetByID(ctx context.Context, gymID, id int) (*Payment, error)
	List(ctx context.Context, gymID int) ([]Payment, error)
	MarkPaid(ctx context.Context, gymID, id int, paidDate time.Time) (*Payment, error)
	MarkOverdue(ctx context.Context, gymID, id int) (*Payment, error)
}
