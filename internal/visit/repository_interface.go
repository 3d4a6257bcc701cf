package visit

import (
	"context"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
)

type Repository interface {
	// Record appends the visit and updates the member's visit counters and
	// activity status in one transaction.
	Record(ctx context.Context, gymID, memberID int, at time.Time, idempotencyKey string, status member.Status) (*Visit, int, error)
	ListByMember(ctx context.Context, gymID, memberID int) ([]Visit, error)
}
