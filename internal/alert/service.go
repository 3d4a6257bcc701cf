package alert

import (
	"context"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/gym"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/metrics"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/notify"
)

type Service interface {
	// Raise inserts the alert and queues a notification email to the gym's
	// contact address.
	Raise(ctx context.Context, gymID int, alertType, severity, message string) (*Alert, error)
	ListUnread(ctx context.Context, gymID int) ([]Alert, error)
	MarkRead(ctx context.Context, gymID, id int) error
	MarkAllRead(ctx context.Context, gymID int) (int64, error)
}

type service struct {
	repo     Repository
	gyms     gym.Repository
	notifier *notify.Service
}

func NewService(repo Repository, gyms gym.Repository, notifier *notify.Service) Service {
	return &service{repo: repo, gyms: gyms, notifier: notifier}
}

func (s *service) Raise(ctx context.Context, gymID int, alertType, severity, message string) (*Alert, error) {
	a, err := s.repo.Create(ctx, gymID, alertType, severity, message)
	if err != nil {
		return nil, err
	}

	metrics.RecordAlert(alertType)

	// Notification failure must not fail the alert itself.
	g, err := s.gyms.GetGymByID(ctx, gymID)
	if err != nil || g.ContactEmail == "" {
		return a, nil
	}
	if err := s.notifier.Send(ctx, g.ContactEmail, "[Gym Suite] "+alertType, message, alertType); err != nil {
		logger.Errorf("Failed to queue alert notification for gym %d: %v", gymID, err)
	}

	return a, nil
}

func (s *service) ListUnread(ctx context.Context, gymID int) ([]Alert, error) {
	return s.repo.ListUnread(ctx, gymID)
}

func (s *service) MarkRead(ctx context.Context, gymID, id int) error {
	return s.repo.MarkRead(ctx, gymID, id)
}

func (s *service) MarkAllRead(ctx context.Context, gymID int) (int64, error) {
	return s.repo.MarkAllRead(ctx, gymID)
}
