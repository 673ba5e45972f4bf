package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

func (h *PaymentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

func (h *PaymentHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Stats())
}

type CollectPaymentRequest struct {
	ClientID    string               `json:"client_id"`
	DealID      string               `json:"deal_id"`
	Amount      float64              `json:"amount"`
	Method      models.PaymentMethod `json:"method"`
	Description string               `json:"description"`
}

func (h *PaymentHandler) Collect(c *gin.Context) {
	var req CollectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.Service.Collect(c.Request.Context(), req.ClientID, req.DealID, req.Amount, req.Method, req.Description)
	if err != nil {
		switch err.Error() {
		case "amount must be positive":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case "client not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}
