package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{Service: service}
}

func (h *MessageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Query("lead")))
}

type SendMessageRequest struct {
	Channel models.MessageChannel `json:"channel"`
	LeadID  string                `json:"lead_id"`
	Subject string                `json:"subject"`
	Body    string                `json:"body"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.Service.Send(c.Request.Context(), req.Channel, req.LeadID, req.Subject, req.Body)
	if err != nil {
		if err.Error() == "lead not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}
