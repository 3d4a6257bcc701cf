package dashboard

import (
	"errors"
	"net/http"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/api"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Dashboard snapshot
// @Description  Combines member, payment, session and alert reads into one overview. Any failed read aborts the whole snapshot.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Snapshot
// @Failure      401 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context(), gymID)
	if err != nil {
		var fetchErr *DataFetchError
		if errors.As(err, &fetchErr) {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to load dashboard data: " + fetchErr.Source})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compose dashboard"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
