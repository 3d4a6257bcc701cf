// Package sweep periodically recomputes every member's activity status so
// that persisted statuses cannot go stale between visits.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/metrics"

	"github.com/robfig/cron/v3"
)

type Service struct {
	members  member.Repository
	alerts   alert.Service
	schedule string
	cron     *cron.Cron
	now      func() time.Time
}

func New(members member.Repository, alerts alert.Service, schedule string) *Service {
	return &Service{
		members:  members,
		alerts:   alerts,
		schedule: schedule,
		cron:     cron.New(),
		now:      time.Now,
	}
}

func (s *Service) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.Run(ctx); err != nil {
			logger.Errorf("Activity-status sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	logger.Infof("Activity-status sweep scheduled: %s", s.schedule)
	return nil
}

func (s *Service) Stop() {
	s.cron.Stop()
}

// Run reclassifies all members whose stored status drifted from their
// last_visit recency and raises an alert for every member that just went
// inactive.
func (s *Service) Run(ctx context.Context) error {
	start := s.now()

	transitions, err := s.members.ReclassifyStale(ctx, start)
	if err != nil {
		metrics.RecordSweepRun("failure", time.Since(start).Seconds())
		return err
	}

	for _, t := range transitions {
		metrics.RecordStatusTransition(string(t.NewStatus))
		if t.NewStatus != member.StatusInactive {
			continue
		}

		msg := fmt.Sprintf("Member %s (#%d) has gone inactive", t.Name, t.MemberID)
		if _, err := s.alerts.Raise(ctx, t.GymID, alert.TypeMemberInactive, "info", msg); err != nil {
			logger.Errorf("Failed to raise inactivity alert for member %d: %v", t.MemberID, err)
		}
	}

	metrics.RecordSweepRun("success", time.Since(start).Seconds())
	logger.Info("Activity-status sweep completed",
		"transitions", len(transitions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
