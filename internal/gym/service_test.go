package gym

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGymRepo struct{ mock.Mock }

func (m *MockGymRepo) CreateGym(ctx context.Context, name, location, contactEmail string) (*Gym, error) {
	args := m.Called(ctx, name, location, contactEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockGymRepo) GetAllGyms(ctx context.Context) ([]Gym, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockGymRepo) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func TestService_CreateGym(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("CreateGym", mock.Anything, "Downtown", "City X", "owner@downtown.example").
		Return(&Gym{ID: 1, Name: "Downtown"}, nil)

	svc := NewService(repo)
	g, err := svc.CreateGym(context.Background(), CreateGymRequest{
		Name: "Downtown", Location: "City X", ContactEmail: "owner@downtown.example",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, g.ID)
	repo.AssertExpectations(t)
}

func TestService_GetGymByID_NotFound(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("GetGymByID", mock.Anything, 99).Return(nil, errors.New("sql: no rows in result set"))

	svc := NewService(repo)
	g, err := svc.GetGymByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrGymNotFound)
	assert.Nil(t, g)
}
