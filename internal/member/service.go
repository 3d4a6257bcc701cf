package member

import (
	"context"
	"errors"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"
)

var ErrMemberNotFound = errors.New("member not found")

type Service interface {
	CreateMember(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error)
	GetMember(ctx context.Context, gymID, id int) (*Member, error)
	ListMembers(ctx context.Context, gymID int) ([]Member, error)
	UpdateMember(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, gymID, id int) error
}

type service struct {
	repo    Repository
	coaches coach.Service
}

func NewService(repo Repository, coaches coach.Service) Service {
	return &service{repo: repo, coaches: coaches}
}

func (s *service) CreateMember(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	if req.CoachID != nil {
		if _, err := s.coaches.GetCoach(ctx, gymID, *req.CoachID); err != nil {
			return nil, coach.ErrCoachNotFound
		}
	}

	m, err := s.repo.Create(ctx, gymID, req)
	if err != nil {
		return nil, err
	}

	if m.CoachID != nil {
		if _, err := s.coaches.Recalculate(ctx, gymID, *m.CoachID); err != nil {
			return m, err
		}
	}

	return m, nil
}

func (s *service) GetMember(ctx context.Context, gymID, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *service) ListMembers(ctx context.Context, gymID int) ([]Member, error) {
	return s.repo.List(ctx, gymID)
}

// UpdateMember persists the change and, when the coach assignment moved,
// recounts both the old and the new coach.
func (s *service) UpdateMember(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	if req.CoachID != nil {
		if _, err := s.coaches.GetCoach(ctx, gymID, *req.CoachID); err != nil {
			return nil, coach.ErrCoachNotFound
		}
	}

	m, err := s.repo.Update(ctx, gymID, id, req)
	if err != nil {
		return nil, err
	}

	oldCoach := existing.CoachID
	newCoach := m.CoachID
	if coachChanged(oldCoach, newCoach) {
		if oldCoach != nil {
			if _, err := s.coaches.Recalculate(ctx, gymID, *oldCoach); err != nil {
				return m, err
			}
		}
		if newCoach != nil {
			if _, err := s.coaches.Recalculate(ctx, gymID, *newCoach); err != nil {
				return m, err
			}
		}
	}

	return m, nil
}

func (s *service) DeleteMember(ctx context.Context, gymID, id int) error {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return ErrMemberNotFound
	}

	if err := s.repo.Delete(ctx, gymID, id); err != nil {
		return err
	}

	if existing.CoachID != nil {
		if _, err := s.coaches.Recalculate(ctx, gymID, *existing.CoachID); err != nil {
			return err
		}
	}

	return nil
}

func coachChanged(old, new *int) bool {
	if old == nil && new == nil {
		return false
	}
	if old == nil || new == nil {
		return true
	}
	return *old != *new
}
