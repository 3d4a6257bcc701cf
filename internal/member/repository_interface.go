package member

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	GetByID(ctx context.Context, gymID, id int) (*Member, error)
	List(ctx context.Context, gymID int) ([]Member, error)
	Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, gymID, id int) error
	CountByStatus(ctx context.Context, gymID int) (*StatusCounts, error)
	MonthlyRecurringRevenue(ctx context.Context, gymID int) (int64, error)
	ReclassifyStale(ctx context.Context, now time.Time) ([]StatusTransition, error)
}
