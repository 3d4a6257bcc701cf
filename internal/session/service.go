package session

import (
	"context"
	"errors"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidSession    = errors.New("invalid session data")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service interface {
	CreateSession(ctx context.Context, gymID int, req CreateSessionRequest) (*Session, error)
	ListSessions(ctx context.Context, gymID int) ([]Session, error)
	UpdateStatus(ctx context.Context, gymID, id int, status SessionStatus) (*Session, error)
	CountForGym(ctx context.Context, gymID int) (*Counts, error)
}

type service struct {
	repo    Repository
	coaches coach.Service
	now     func() time.Time
}

func NewService(repo Repository, coaches coach.Service) Service {
	return &service{repo: repo, coaches: coaches, now: time.Now}
}

func (s *service) CreateSession(ctx context.Context, gymID int, req CreateSessionRequest) (*Session, error) {
	if _, err := s.coaches.GetCoach(ctx, gymID, req.CoachID); err != nil {
		return nil, coach.ErrCoachNotFound
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidSession
	}

	sess, err := s.repo.Create(ctx, gymID, req.CoachID, req.MemberID, req.Title, scheduledAt, req.DurationMin)
	if err != nil {
		return nil, err
	}

	s.recalcCoach(ctx, gymID, sess.CoachID)
	return sess, nil
}

func (s *service) ListSessions(ctx context.Context, gymID int) ([]Session, error) {
	return s.repo.List(ctx, gymID)
}

// UpdateStatus enforces the lifecycle: a scheduled session may complete,
// cancel or no-show; terminal states never change again.
func (s *service) UpdateStatus(ctx context.Context, gymID, id int, status SessionStatus) (*Session, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if existing.Status != StatusScheduled || status == StatusScheduled {
		return nil, ErrInvalidTransition
	}

	sess, err := s.repo.UpdateStatus(ctx, gymID, id, status)
	if err != nil {
		return nil, err
	}

	s.recalcCoach(ctx, gymID, sess.CoachID)
	return sess, nil
}

func (s *service) CountForGym(ctx context.Context, gymID int) (*Counts, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.CountForGym(ctx, gymID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *service) recalcCoach(ctx context.Context, gymID, coachID int) {
	if _, err := s.coaches.Recalculate(ctx, gymID, coachID); err != nil {
		logger.Errorf("Coach recalculation after session change failed: %v", err)
	}
}
