package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, gymID, coachID int, memberID *int, title string, scheduledAt time.Time, durationMin int) (*Session, error)
	GetByID(ctx context.Context, gymID, id int) (*Session, error)
	List(ctx context.Context, gymID int) ([]Session, error)
	UpdateStatus(ctx context.Context, gymID, id int, status SessionStatus) (*Session, error)
	CountForGym(ctx context.Context, gymID int, dayStart, dayEnd time.Time) (*Counts, error)
}
