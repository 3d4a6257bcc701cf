package coach

import (
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

// @Summary      Create a coach
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body coach.CreateCoachRequest true "Coach payload"
// @Success      201 {object} coach.Coach
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /coaches [post]
func (h *Handler) CreateCoach(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	coach, err := h.service.CreateCoach(c.Request.Context(), gymID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create coach"})
		return
	}

	c.JSON(http.StatusCreated, coach)
}

// @Summary      List coaches
// @Tags         coaches
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} coach.Coach
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /coaches [get]
func (h *Handler) ListCoaches(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	coaches, err := h.service.ListCoaches(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch coaches"})
		return
	}

	c.JSON(http.StatusOK, coaches)
}

// @Summary      Get a coach
// @Tags         coaches
// @Produce      json
// @Security     BearerAuth
// @Param        coachID path int true "Coach ID"
// @Success      200 {object} coach.Coach
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /coaches/{coachID} [get]
func (h *Handler) GetCoach(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	coachID, err := strconv.Atoi(c.Param("coachID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	coach, err := h.service.GetCoach(c.Request.Context(), gymID, coachID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
		return
	}

	c.JSON(http.StatusOK, coach)
}

// @Summary      Update a coach
// @Tags         coaches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        coachID path int true "Coach ID"
// @Param        request body coach.UpdateCoachRequest true "Coach payload"
// @Success      200 {object} coach.Coach
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /coaches/{coachID} [put]
func (h *Handler) UpdateCoach(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	coachID, err := strconv.Atoi(c.Param("coachID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	var req UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	coach, err := h.service.UpdateCoach(c.Request.Context(), gymID, coachID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
		return
	}

	c.JSON(http.StatusOK, coach)
}

// @Summary      Recalculate coach aggregates
// @Description  Admin-only: recount client_count, sessions_this_month and revenue_this_month from source tables
// @Tags         admin,coaches
// @Produce      json
// @Security     BearerAuth
// @Param        coachID path int true "Coach ID"
// @Success      200 {object} coach.Coach
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/coaches/{coachID}/recalculate [post]
func (h *Handler) Recalculate(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	coachID, err := strconv.Atoi(c.Param("coachID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid coach ID"})
		return
	}

	coach, err := h.service.Recalculate(c.Request.Context(), gymID, coachID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Coach not found"})
		return
	}

	c.JSON(http.StatusOK, coach)
}
