package coach

import (
	"context"
	"errors"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/metrics"
)

var ErrCoachNotFound = errors.New("coach not found")

type Service interface {
	CreateCoach(ctx context.Context, gymID int, req CreateCoachRequest) (*Coach, error)
	GetCoach(ctx context.Context, gymID, id int) (*Coach, error)
	ListCoaches(ctx context.Context, gymID int) ([]Coach, error)
	UpdateCoach(ctx context.Context, gymID, id int, req UpdateCoachRequest) (*Coach, error)
	Recalculate(ctx context.Context, gymID, id int) (*Coach, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateCoach(ctx context.Context, gymID int, req CreateCoachRequest) (*Coach, error) {
	return s.repo.Create(ctx, gymID, req)
}

func (s *service) GetCoach(ctx context.Context, gymID, id int) (*Coach, error) {
	c, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrCoachNotFound
	}
	return c, nil
}

func (s *service) ListCoaches(ctx context.Context, gymID int) ([]Coach, error) {
	return s.repo.List(ctx, gymID)
}

func (s *service) UpdateCoach(ctx context.Context, gymID, id int, req UpdateCoachRequest) (*Coach, error) {
	c, err := s.repo.Update(ctx, gymID, id, req)
	if err != nil {
		return nil, ErrCoachNotFound
	}
	return c, nil
}

func (s *service) Recalculate(ctx context.Context, gymID, id int) (*Coach, error) {
	monthStart := MonthStart(s.now())
	monthEnd := monthStart.AddDate(0, 1, 0)
	c, err := s.repo.Recalculate(ctx, gymID, id, monthStart, monthEnd)
	if err != nil {
		return nil, ErrCoachNotFound
	}
	metrics.RecordCoachRecalc()
	return c, nil
}

// MonthStart returns local midnight on the first of the current month, the
// boundary used by every this-month aggregate.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
