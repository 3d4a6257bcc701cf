package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCoachRepo struct{ mock.Mock }

func (m *MockCoachRepo) Create(ctx context.Context, gymID int, req CreateCoachRequest) (*Coach, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coach), args.Error(1)
}

func (m *MockCoachRepo) GetByID(ctx context.Context, gymID, id int) (*Coach, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coach), args.Error(1)
}

func (m *MockCoachRepo) List(ctx context.Context, gymID int) ([]Coach, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Coach), args.Error(1)
}

func (m *MockCoachRepo) Update(ctx context.Context, gymID, id int, req UpdateCoachRequest) (*Coach, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coach), args.Error(1)
}

func (m *MockCoachRepo) Recalculate(ctx context.Context, gymID, id int, monthStart, monthEnd time.Time) (*Coach, error) {
	args := m.Called(ctx, gymID, id, monthStart, monthEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coach), args.Error(1)
}

func TestMonthStart(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	now := time.Date(2026, 3, 15, 18, 30, 45, 0, loc)
	start := MonthStart(now)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestService_Recalculate_UsesCurrentMonthBounds(t *testing.T) {
	repo := new(MockCoachRepo)
	fixedNow := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	svc := &service{repo: repo, now: func() time.Time { return fixedNow }}

	// The window is [March 1, April 1): a session already booked for April
	// must not count toward March.
	repo.On("Recalculate", mock.Anything, 1, 5,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)).
		Return(&Coach{ID: 5, ClientCount: 2, SessionsThisMonth: 8, RevenueThisMonth: 20000}, nil)

	c, err := svc.Recalculate(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 2, c.ClientCount)
	repo.AssertExpectations(t)
}

func TestService_Recalculate_NotFound(t *testing.T) {
	repo := new(MockCoachRepo)
	svc := NewService(repo)

	repo.On("Recalculate", mock.Anything, 1, 99, mock.Anything, mock.Anything).
		Return(nil, errors.New("sql: no rows in result set"))

	c, err := svc.Recalculate(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrCoachNotFound)
	assert.Nil(t, c)
}

func TestService_GetCoach_NotFound(t *testing.T) {
	repo := new(MockCoachRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 1, 42).Return(nil, errors.New("sql: no rows in result set"))

	c, err := svc.GetCoach(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrCoachNotFound)
	assert.Nil(t, c)
}
