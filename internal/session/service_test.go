package session

import (
	"context"
	"testing"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepo struct{ mock.Mock }
type MockCoachService struct{ mock.Mock }

func (m *MockSessionRepo) Create(ctx context.Context, gymID, coachID int, memberID *int, title string, scheduledAt time.Time, durationMin int) (*Session, error) {
	args := m.Called(ctx, gymID, coachID, memberID, title, scheduledAt, durationMin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) GetByID(ctx context.Context, gymID, id int) (*Session, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) List(ctx context.Context, gymID int) ([]Session, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepo) UpdateStatus(ctx context.Context, gymID, id int, status SessionStatus) (*Session, error) {
	args := m.Called(ctx, gymID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) CountForGym(ctx context.Context, gymID int, dayStart, dayEnd time.Time) (*Counts, error) {
	args := m.Called(ctx, gymID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func (m *MockCoachService) CreateCoach(ctx context.Context, gymID int, req coach.CreateCoachRequest) (*coach.Coach, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.Coach), args.Error(1)
}

func (m *MockCoachService) GetCoach(ctx context.Context, gymID, id int) (*coach.Coach, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.Coach), args.Error(1)
}

func (m *MockCoachService) ListCoaches(ctx context.Context, gymID int) ([]coach.Coach, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]coach.Coach), args.Error(1)
}

func (m *MockCoachService) UpdateCoach(ctx context.Context, gymID, id int, req coach.UpdateCoachRequest) (*coach.Coach, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.Coach), args.Error(1)
}

func (m *MockCoachService) Recalculate(ctx context.Context, gymID, id int) (*coach.Coach, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coach.Coach), args.Error(1)
}

func TestService_CreateSession(t *testing.T) {
	sr := new(MockSessionRepo)
	cs := new(MockCoachService)

	scheduledAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	cs.On("GetCoach", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5, GymID: 1}, nil)
	sr.On("Create", mock.Anything, 1, 5, (*int)(nil), "PT hour", scheduledAt, 60).Return(&Session{
		ID: 1, GymID: 1, CoachID: 5, Title: "PT hour", Status: StatusScheduled,
	}, nil)
	cs.On("Recalculate", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5}, nil)

	svc := NewService(sr, cs)
	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionRequest{
		CoachID: 5, Title: "PT hour", ScheduledAt: "2026-03-20T10:00:00Z", DurationMin: 60,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusScheduled, sess.Status)
	cs.AssertExpectations(t)
}

func TestService_CreateSession_BadTimestamp(t *testing.T) {
	sr := new(MockSessionRepo)
	cs := new(MockCoachService)

	cs.On("GetCoach", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5, GymID: 1}, nil)

	svc := NewService(sr, cs)
	_, err := svc.CreateSession(context.Background(), 1, CreateSessionRequest{
		CoachID: 5, Title: "PT hour", ScheduledAt: "tomorrow at ten", DurationMin: 60,
	})

	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     SessionStatus
		next        SessionStatus
		expectError error
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, nil},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, nil},
		{"scheduled to no_show", StatusScheduled, StatusNoShow, nil},
		{"completed is terminal", StatusCompleted, StatusCancelled, ErrInvalidTransition},
		{"cancelled is terminal", StatusCancelled, StatusCompleted, ErrInvalidTransition},
		{"cannot return to scheduled", StatusScheduled, StatusScheduled, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := new(MockSessionRepo)
			cs := new(MockCoachService)

			sr.On("GetByID", mock.Anything, 1, 3).Return(&Session{
				ID: 3, GymID: 1, CoachID: 5, Status: tt.current,
			}, nil)

			if tt.expectError == nil {
				sr.On("UpdateStatus", mock.Anything, 1, 3, tt.next).Return(&Session{
					ID: 3, GymID: 1, CoachID: 5, Status: tt.next,
				}, nil)
				cs.On("Recalculate", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5}, nil)
			}

			svc := NewService(sr, cs)
			sess, err := svc.UpdateStatus(context.Background(), 1, 3, tt.next)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, sess)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.next, sess.Status)
			}
		})
	}
}

func TestService_CountForGym_UsesLocalDayBounds(t *testing.T) {
	sr := new(MockSessionRepo)
	cs := new(MockCoachService)

	now := time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	sr.On("CountForGym", mock.Anything, 1, dayStart, dayStart.AddDate(0, 0, 1)).
		Return(&Counts{Today: 4, Total: 120}, nil)

	svc := &service{repo: sr, coaches: cs, now: func() time.Time { return now }}
	counts, err := svc.CountForGym(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 4, counts.Today)
	assert.Equal(t, 120, counts.Total)
	sr.AssertExpectations(t)
}
