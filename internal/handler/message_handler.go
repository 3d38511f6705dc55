package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List godoc
// GET /api/messages (admin)
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.ListMessages(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	views := make([]model.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, m.View())
	}
	response.JSON(c, http.StatusOK, gin.H{"messages": views})
}

// Create godoc
// POST /api/messages
// Open to everyone; this is the public contact form.
func (h *MessageHandler) Create(c *gin.Context) {
	var req model.MessageRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.messageService.SendMessage(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, response.Created{ID: id, Success: true})
}
