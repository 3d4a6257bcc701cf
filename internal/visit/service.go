package visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrDuplicateCheckIn = errors.New("duplicate check-in")

// Keys carrying a client idempotency key are remembered for a day; key-less
// check-ins are only deduped within the short window.
const idempotencyKeyTTL = 24 * time.Hour

type Service interface {
	CheckIn(ctx context.Context, gymID, memberID int, idempotencyKey string) (*CheckInResponse, error)
	ListVisits(ctx context.Context, gymID, memberID int) ([]Visit, error)
}

type service struct {
	repo         Repository
	members      member.Repository
	redis        redis.Cmdable
	dedupeWindow time.Duration
	now          func() time.Time
}

func NewService(repo Repository, members member.Repository, rdb redis.Cmdable, dedupeWindow time.Duration) Service {
	return &service{
		repo:         repo,
		members:      members,
		redis:        rdb,
		dedupeWindow: dedupeWindow,
		now:          time.Now,
	}
}

// CheckIn appends a visit for the member, bumps total_visits, moves
// last_visit forward and reclassifies the member's activity status, all in
// one transaction. Rapid repeat calls inside the dedupe window are dropped.
func (s *service) CheckIn(ctx context.Context, gymID, memberID int, idempotencyKey string) (*CheckInResponse, error) {
	m, err := s.members.GetByID(ctx, gymID, memberID)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	if idempotencyKey != "" {
		if dup := s.claim(ctx, fmt.Sprintf("visit:idem:%d:%d:%s", gymID, memberID, idempotencyKey), idempotencyKeyTTL); dup {
			metrics.RecordDuplicateCheckIn()
			return nil, ErrDuplicateCheckIn
		}
	} else {
		idempotencyKey = uuid.NewString()
	}

	if dup := s.claim(ctx, fmt.Sprintf("visit:window:%d:%d", gymID, memberID), s.dedupeWindow); dup {
		metrics.RecordDuplicateCheckIn()
		return nil, ErrDuplicateCheckIn
	}

	now := s.now()
	status := member.StatusFor(&now, now)

	v, totalVisits, err := s.repo.Record(ctx, gymID, memberID, now, idempotencyKey, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordVisit()
	if m.ActivityStatus != status {
		metrics.RecordStatusTransition(string(status))
	}

	return &CheckInResponse{
		Visit:          v,
		ActivityStatus: string(status),
		TotalVisits:    totalVisits,
	}, nil
}

func (s *service) ListVisits(ctx context.Context, gymID, memberID int) ([]Visit, error) {
	if _, err := s.members.GetByID(ctx, gymID, memberID); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.ListByMember(ctx, gymID, memberID)
}

// claim marks the key for ttl and reports whether it was already marked.
// When Redis is unreachable the check-in goes through; losing dedupe beats
// refusing members at the door.
func (s *service) claim(ctx context.Context, key string, ttl time.Duration) bool {
	set, err := s.redis.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		logger.Errorf("visit dedupe unavailable: %v", err)
		return false
	}
	return !set
}
