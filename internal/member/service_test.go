package member

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMemberRepo struct{ mock.Mock }
type MockCoachService struct{ mock.Mock }

func (m *MockMemberRepo) Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, gymID, id int) (*Member, error) {
	args := m.Called(ctx, gymID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context, gymID int) ([]Member, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, gymID, id int, req UpdateMemberRequest) (*Member, error) {
	args := m.Called(ctx, gymID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockMemberRepo) Delete(ctx context.Context, gymID, id int) error {
	return m.Called(ctx, gymID, id).Error(0)
}

func (m *MockMemberRepo) CountByStatus(ctx context.Context, gymID int) (*StatusCounts, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StatusCounts), args.Error(1)
}

func (m *MockMemberRepo) MonthlyRecurringRevenue(ctx context.Context, gymID int) (int64, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepo) ReclassifyStale(ctx context.Context, now time.Time) ([]StatusTransition, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StatusTransition), args.Error(1)
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

func intPtr(i int) *int { return &i }

func TestService_CreateMember(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateMemberRequest
		setupMocks  func(*MockMemberRepo, *MockCoachService)
		expectError error
	}{
		{
			name: "creates member without coach",
			req:  CreateMemberRequest{Name: "Ana", Email: "ana@example.com", MembershipTier: TierBasic, MonthlyFeeCents: 3000},
			setupMocks: func(mr *MockMemberRepo, cs *MockCoachService) {
				mr.On("Create", mock.Anything, 1, mock.Anything).Return(&Member{
					ID: 10, GymID: 1, Name: "Ana", ActivityStatus: StatusInactive,
				}, nil)
			},
		},
		{
			name: "creates member with coach and recalculates",
			req:  CreateMemberRequest{Name: "Ben", Email: "ben@example.com", CoachID: intPtr(5), MembershipTier: TierPremium, MonthlyFeeCents: 9000},
			setupMocks: func(mr *MockMemberRepo, cs *MockCoachService) {
				cs.On("GetCoach", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5, GymID: 1}, nil)
				mr.On("Create", mock.Anything, 1, mock.Anything).Return(&Member{
					ID: 11, GymID: 1, Name: "Ben", CoachID: intPtr(5),
				}, nil)
				cs.On("Recalculate", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5, ClientCount: 1}, nil)
			},
		},
		{
			name: "unknown coach rejected",
			req:  CreateMemberRequest{Name: "Cara", Email: "cara@example.com", CoachID: intPtr(99), MembershipTier: TierBasic, MonthlyFeeCents: 3000},
			setupMocks: func(mr *MockMemberRepo, cs *MockCoachService) {
				cs.On("GetCoach", mock.Anything, 1, 99).Return(nil, coach.ErrCoachNotFound)
			},
			expectError: coach.ErrCoachNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr := new(MockMemberRepo)
			cs := new(MockCoachService)
			tt.setupMocks(mr, cs)

			service := NewService(mr, cs)
			m, err := service.CreateMember(context.Background(), 1, tt.req)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, m)
			}
			mr.AssertExpectations(t)
			cs.AssertExpectations(t)
		})
	}
}

func TestService_UpdateMember_ReassignmentRecalculatesBothCoaches(t *testing.T) {
	mr := new(MockMemberRepo)
	cs := new(MockCoachService)

	mr.On("GetByID", mock.Anything, 1, 10).Return(&Member{
		ID: 10, GymID: 1, Name: "Ana", CoachID: intPtr(5),
	}, nil)
	cs.On("GetCoach", mock.Anything, 1, 6).Return(&coach.Coach{ID: 6, GymID: 1}, nil)
	mr.On("Update", mock.Anything, 1, 10, mock.Anything).Return(&Member{
		ID: 10, GymID: 1, Name: "Ana", CoachID: intPtr(6),
	}, nil)
	cs.On("Recalculate", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5}, nil)
	cs.On("Recalculate", mock.Anything, 1, 6).Return(&coach.Coach{ID: 6}, nil)

	service := NewService(mr, cs)
	req := UpdateMemberRequest{Name: "Ana", Email: "ana@example.com", CoachID: intPtr(6), MembershipTier: TierBasic, MonthlyFeeCents: 3000}
	m, err := service.UpdateMember(context.Background(), 1, 10, req)

	assert.NoError(t, err)
	assert.Equal(t, 6, *m.CoachID)
	cs.AssertNumberOfCalls(t, "Recalculate", 2)
}

func TestService_UpdateMember_UnchangedCoachSkipsRecalc(t *testing.T) {
	mr := new(MockMemberRepo)
	cs := new(MockCoachService)

	mr.On("GetByID", mock.Anything, 1, 10).Return(&Member{
		ID: 10, GymID: 1, CoachID: intPtr(5),
	}, nil)
	cs.On("GetCoach", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5, GymID: 1}, nil)
	mr.On("Update", mock.Anything, 1, 10, mock.Anything).Return(&Member{
		ID: 10, GymID: 1, CoachID: intPtr(5),
	}, nil)

	service := NewService(mr, cs)
	req := UpdateMemberRequest{Name: "Ana", Email: "ana@example.com", CoachID: intPtr(5), MembershipTier: TierBasic, MonthlyFeeCents: 3000}
	_, err := service.UpdateMember(context.Background(), 1, 10, req)

	assert.NoError(t, err)
	cs.AssertNotCalled(t, "Recalculate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeleteMember(t *testing.T) {
	mr := new(MockMemberRepo)
	cs := new(MockCoachService)

	mr.On("GetByID", mock.Anything, 1, 10).Return(&Member{
		ID: 10, GymID: 1, CoachID: intPtr(5),
	}, nil)
	mr.On("Delete", mock.Anything, 1, 10).Return(nil)
	cs.On("Recalculate", mock.Anything, 1, 5).Return(&coach.Coach{ID: 5}, nil)

	service := NewService(mr, cs)
	err := service.DeleteMember(context.Background(), 1, 10)

	assert.NoError(t, err)
	mr.AssertExpectations(t)
	cs.AssertExpectations(t)
}

func TestService_GetMember_NotFound(t *testing.T) {
	mr := new(MockMemberRepo)
	cs := new(MockCoachService)

	mr.On("GetByID", mock.Anything, 1, 99).Return(nil, errors.New("sql: no rows in result set"))

	service := NewService(mr, cs)
	m, err := service.GetMember(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.Nil(t, m)
}

func TestCoachChanged(t *testing.T) {
	assert.False(t, coachChanged(nil, nil))
	assert.True(t, coachChanged(nil, intPtr(1)))
	assert.True(t, coachChanged(intPtr(1), nil))
	assert.True(t, coachChanged(intPtr(1), intPtr(2)))
	assert.False(t, coachChanged(intPtr(3), intPtr(3)))
}
