package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) Snapshot(ctx context.Context, gymID int) (*Snapshot, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Snapshot), args.Error(1)
}

func setupDashboardRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("gym_id", 1)
		c.Next()
	})
	r.GET("/dashboard", NewHandler(svc).GetSnapshot)
	return r
}

func TestHandler_GetSnapshot(t *testing.T) {
	svc := new(MockDashboardService)
	svc.On("Snapshot", mock.Anything, 1).Return(&Snapshot{
		TotalMembers:  10,
		ActiveMembers: 4,
		MRR:           40000,
	}, nil)

	r := setupDashboardRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalMembers":10`)
	assert.Contains(t, w.Body.String(), `"mrr":40000`)
}

func TestHandler_GetSnapshot_FetchFailure(t *testing.T) {
	svc := new(MockDashboardService)
	svc.On("Snapshot", mock.Anything, 1).Return(nil, &DataFetchError{
		Source: "payments",
		Err:    errors.New("connection reset"),
	})

	r := setupDashboardRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "payments")
}
