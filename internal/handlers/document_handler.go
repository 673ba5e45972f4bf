package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type DocumentHandler struct {
	Service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: service}
}

func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

// Generate renders a template against a deal and streams the PDF.
func (h *DocumentHandler) Generate(c *gin.Context) {
	var body struct {
		DealID string `json:"deal_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := h.Service.Generate(c.Request.Context(), c.Param("id"), body.DealID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}
