package message

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

func callerScope(c *gin.Context) (gymID, profileID int, ok bool) {
	gymID, ok = auth.GymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Gym not found in token"})
		return 0, 0, false
	}
	profileID, ok = auth.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Profile not found in token"})
		return 0, 0, false
	}
	return gymID, profileID, true
}

// @Summary      Send a message
// @Description  Direct message to one staff profile, or a broadcast to all staff of the gym
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body message.SendMessageRequest true "Message payload"
// @Success      201 {object} message.Message
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /messages [post]
func (h *Handler) Send(c *gin.Context) {
	gymID, profileID, ok := callerScope(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.Send(c.Request.Context(), gymID, profileID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRecipient) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Message needs exactly one of recipient_id or broadcast"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      Inbox
// @Description  Direct messages for the caller plus all broadcasts of the gym
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} message.Message
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /messages [get]
func (h *Handler) Inbox(c *gin.Context) {
	gymID, profileID, ok := callerScope(c)
	if !ok {
		return
	}

	messages, err := h.service.Inbox(c.Request.Context(), gymID, profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// @Summary      Unread message count
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} message.UnreadCountResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /messages/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	gymID, profileID, ok := callerScope(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), gymID, profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to count messages"})
		return
	}

	c.JSON(http.StatusOK, UnreadCountResponse{Unread: count})
}

// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        messageID path int true "Message ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /messages/{messageID}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	gymID, profileID, ok := callerScope(c)
	if !ok {
		return
	}

	messageID, err := strconv.Atoi(c.Param("messageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid message ID"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), gymID, profileID, messageID); err != nil {
		switch {
		case errors.Is(err, ErrMessageNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Message not found"})
		case errors.Is(err, ErrNotRecipient):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Only the recipient can mark a message read"})
		case errors.Is(err, ErrBroadcastRead):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Broadcast messages carry no read state"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to mark message read"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Message marked read"})
}
