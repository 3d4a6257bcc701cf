package alert

import (
	"errors"
	"net/http"
	"strconv"

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

// @Summary      List unread alerts
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} alert.Alert
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /alerts/unread [get]
func (h *Handler) ListUnread(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	alerts, err := h.service.ListUnread(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// @Summary      Mark an alert read
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Param        alertID path int true "Alert ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /alerts/{alertID}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	alertID, err := strconv.Atoi(c.Param("alertID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid alert ID"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), gymID, alertID); err != nil {
		if errors.Is(err, ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Alert not found or already read"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to mark alert read"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Alert marked read"})
}

// @Summary      Mark all alerts read
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.MessageResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /alerts/read-all [post]
func (h *Handler) MarkAllRead(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	count, err := h.service.MarkAllRead(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to mark alerts read"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: strconv.FormatInt(count, 10) + " alerts marked read"})
}
