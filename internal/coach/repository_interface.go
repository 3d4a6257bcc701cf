package coach

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, gymID int, req CreateCoachRequest) (*Coach, error)
	GetByID(ctx context.Context, gymID, id int) (*Coach, error)
	List(ctx context.Context, gymID int) ([]Coach, error)
	Update(ctx context.Context, gymID, id int, req UpdateCoachRequest) (*Coach, error)
	Recalculate(ctx context.Context, gymID, id int, monthStart, monthEnd time.Time) (*Coach, error)
}
