package payment

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/api"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/auth"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.CreatePaymentRequest true "Payment payload"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.CreatePayment(c.Request.Context(), gymID, req)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case errors.Is(err, ErrInvalidDueDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid due date, expected YYYY-MM-DD"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} payment.Payment
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary      Mark a payment paid
// @Description  Sets paid_date to now and recounts the member's coach revenue
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        paymentID path int true "Payment ID"
// @Success      200 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{paymentID}/mark-paid [post]
func (h *Handler) MarkPaid(c *gin.Context) {
	h.transition(c, h.service.MarkPaid)
}

// @Summary      Mark a payment overdue
// @Description  Staff action; raises a payment_overdue alert for the gym
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        paymentID path int true "Payment ID"
// @Success      200 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /payments/{paymentID}/mark-overdue [post]
func (h *Handler) MarkOverdue(c *gin.Context) {
	h.transition(c, h.service.MarkOverdue)
}

func (h *Handler) transition(c *gin.Context, apply func(ctx context.Context, gymID, id int) (*Payment, error)) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	paymentID, err := strconv.Atoi(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid payment ID"})
		return
	}

	p, err := apply(c.Request.Context(), gymID, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, ErrAlreadyPaid):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Payment already paid"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Payment summary
// @Description  Read-time aggregation over the gym's payments; nothing is persisted
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} payment.Totals
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payments/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	totals, err := h.service.Summary(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to aggregate payments"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// @Summary      Revenue by month
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} payment.MonthRevenue
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /payments/revenue-by-month [get]
func (h *Handler) RevenueByMonth(c *gin.Context) {
	gymID, ok := auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return
	}

	revenue, err := h.service.RevenueByMonth(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to aggregate revenue"})
		return
	}

	c.JSON(http.StatusOK, revenue)
}
