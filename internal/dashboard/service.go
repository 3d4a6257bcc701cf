package dashboard

import (
	"context"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/metrics"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/payment"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/session"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	Snapshot(ctx context.Context, gymID int) (*Snapshot, error)
}

type service struct {
	members  member.Repository
	payments payment.Repository
	sessions session.Service
	alerts   alert.Repository
	now      func() time.Time
}

func NewService(members member.Repository, payments payment.Repository, sessions session.Service, alerts alert.Repository) Service {
	return &service{
		members:  members,
		payments: payments,
		sessions: sessions,
		alerts:   alerts,
		now:      time.Now,
	}
}

// Snapshot fans out one read per source and joins them into a single
// overview. The reads are independent and read-only; the first failure
// cancels the rest and fails the whole composition.
func (s *service) Snapshot(ctx context.Context, gymID int) (*Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		counts        *member.StatusCounts
		mrr           int64
		paymentTotals payment.Totals
		sessionCounts *session.Counts
		unreadAlerts  []alert.Alert
	)

	g.Go(func() error {
		var err error
		counts, err = s.members.CountByStatus(ctx, gymID)
		if err != nil {
			return &DataFetchError{Source: "members", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		mrr, err = s.members.MonthlyRecurringRevenue(ctx, gymID)
		if err != nil {
			return &DataFetchError{Source: "mrr", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.payments.List(ctx, gymID)
		if err != nil {
			return &DataFetchError{Source: "payments", Err: err}
		}
		paymentTotals = payment.Aggregate(rows, s.now())
		return nil
	})

	g.Go(func() error {
		var err error
		sessionCounts, err = s.sessions.CountForGym(ctx, gymID)
		if err != nil {
			return &DataFetchError{Source: "sessions", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		var err error
		unreadAlerts, err = s.alerts.ListUnread(ctx, gymID)
		if err != nil {
			return &DataFetchError{Source: "alerts", Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.RecordDashboardSnapshot("failure")
		return nil, err
	}

	if unreadAlerts == nil {
		unreadAlerts = []alert.Alert{}
	}

	metrics.RecordDashboardSnapshot("success")

	return &Snapshot{
		TotalMembers:       counts.Total,
		ActiveMembers:      counts.Active,
		ModerateMembers:    counts.Moderate,
		InactiveMembers:    counts.Inactive,
		MRR:                mrr,
		RevenueThisMonth:   paymentTotals.RevenueThisMonthCents,
		PendingPayments:    paymentTotals.PendingAmountCents,
		OverduePayments:    paymentTotals.OverdueCount,
		OverdueAmount:      paymentTotals.OverdueAmountCents,
		TodaySessionsCount: sessionCounts.Today,
		TotalSessions:      sessionCounts.Total,
		UnreadAlerts:       unreadAlerts,
	}, nil
}
