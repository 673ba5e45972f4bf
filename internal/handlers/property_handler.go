package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: service}
}

func (h *PropertyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Query("q")))
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
