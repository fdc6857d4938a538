package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostvana/property_management_app/internal/apperrors"
	"github.com/hostvana/property_management_app/internal/core/domain"
	portssvc "github.com/hostvana/property_management_app/internal/core/ports/services"
	"github.com/hostvana/property_management_app/internal/dto"
	"github.com/hostvana/property_management_app/internal/middleware"
)

// messageHandler handles HTTP requests for lead discussion threads.
type messageHandler struct {
	messageService portssvc.MessageSvcFacade
}

func newMessageHandler(ms portssvc.MessageSvcFacade) *messageHandler {
	return &messageHandler{messageService: ms}
}

// registerMessageRoutes registers the thread routes nested under a lead.
func registerMessageRoutes(leads *gin.RouterGroup, ms portssvc.MessageSvcFacade, ac portssvc.AccessControlSvcFacade) {
	h := newMessageHandler(ms)

	leads.GET("/:id/messages", middleware.RequirePermission(ac, domain.ActionRead, domain.ResourceMessages), h.listMessages)
	leads.POST("/:id/messages", middleware.RequirePermission(ac, domain.ActionCreate, domain.ResourceMessages), h.postMessage)
}

// listMessages godoc
// @Summary List a lead's discussion thread
// @Tags messages
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/messages [get]
func (h *messageHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	messages, err := h.messageService.ListMessages(c.Request.Context(), c.Param("id"), access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to list messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMessagesResponse(messages))
}

// postMessage godoc
// @Summary Post a message on a lead
// @Description Appends a message to the lead's thread. A durable insert answers with the confirmed message; a failed insert answers 500 so the client can roll back its optimistic copy. Mentioned users receive a notification.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param message body dto.CreateMessageRequest true "Message content"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/messages [post]
func (h *messageHandler) postMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, access, ok := requestIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	message, err := h.messageService.PostMessage(c.Request.Context(), c.Param("id"), req, access, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
			return
		}
		logger.Error("Failed to post message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to post message"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}
