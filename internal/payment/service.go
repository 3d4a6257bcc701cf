package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrAlreadyPaid     = errors.New("payment already paid")
)

type Service interface {
	CreatePayment(ctx context.Context, gymID int, req CreatePaymentRequest) (*Payment, error)
	ListPayments(ctx context.Context, gymID int) ([]Payment, error)
	MarkPaid(ctx context.Context, gymID, id int) (*Payment, error)
	MarkOverdue(ctx context.Context, gymID, id int) (*Payment, error)
	Summary(ctx context.Context, gymID int) (*Totals, error)
	RevenueByMonth(ctx context.Context, gymID int) ([]MonthRevenue, error)
}

type service struct {
	repo    Repository
	members member.Repository
	coaches coach.Service
	alerts  alert.Service
	now     func() time.Time
}

func NewService(repo Repository, members member.Repository, coaches coach.Service, alerts alert.Service) Service {
	return &service{
		repo:    repo,
		members: members,
		coaches: coaches,
		alerts:  alerts,
		now:     time.Now,
	}
}

func (s *service) CreatePayment(ctx context.Context, gymID int, req CreatePaymentRequest) (*Payment, error) {
	m, err := s.members.GetByID(ctx, gymID, req.MemberID)
	if err != nil {
		return nil, member.ErrMemberNotFound
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	return s.repo.Create(ctx, gymID, m.ID, req.AmountCents, dueDate)
}

func (s *service) ListPayments(ctx context.Context, gymID int) ([]Payment, error) {
	return s.repo.List(ctx, gymID)
}

// MarkPaid stamps the payment and recounts the paying member's coach, whose
// revenue_this_month just changed.
func (s *service) MarkPaid(ctx context.Context, gymID, id int) (*Payment, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if existing.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	p, err := s.repo.MarkPaid(ctx, gymID, id, s.now())
	if err != nil {
		return nil, err
	}

	m, err := s.members.GetByID(ctx, gymID, p.MemberID)
	if err == nil && m.CoachID != nil {
		if _, err := s.coaches.Recalculate(ctx, gymID, *m.CoachID); err != nil {
			logger.Errorf("Coach recalculation after payment %d failed: %v", p.ID, err)
		}
	}

	return p, nil
}

func (s *service) MarkOverdue(ctx context.Context, gymID, id int) (*Payment, error) {
	existing, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	if existing.Status == StatusPaid {
		return nil, ErrAlreadyPaid
	}

	p, err := s.repo.MarkOverdue(ctx, gymID, id)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Payment #%d (%d cents) for member %d is overdue", p.ID, p.AmountCents, p.MemberID)
	if _, err := s.alerts.Raise(ctx, gymID, alert.TypePaymentOverdue, "warning", msg); err != nil {
		logger.Errorf("Failed to raise overdue alert for payment %d: %v", p.ID, err)
	}

	return p, nil
}

func (s *service) Summary(ctx context.Context, gymID int) (*Totals, error) {
	payments, err := s.repo.List(ctx, gymID)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(payments, s.now())
	return &totals, nil
}

func (s *service) RevenueByMonth(ctx context.Context, gymID int) ([]MonthRevenue, error) {
	payments, err := s.repo.List(ctx, gymID)
	if err != nil {
		return nil, err
	}

	return RevenueByMonth(payments), nil
}
