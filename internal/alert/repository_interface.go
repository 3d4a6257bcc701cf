package alert

import "context"

type Repository interface {
	Create(ctx context.Context, gymID int, alertType, severity, message string) (*Alert, error)
	ListUnread(ctx context.Context, gymID int) ([]Alert, error)
	MarkRead(ctx context.Context, gymID, id int) error
	MarkAllRead(ctx context.Context, gymID int) (int64, error)
}
