package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type DealHandler struct {
	Service *services.DealService
}

func NewDealHandler(service *services.DealService) *DealHandler {
	return &DealHandler{Service: service}
}

func (h *DealHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

func (h *DealHandler) GetByID(c *gin.Context) {
	deal, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(deal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MoveStage backs the kanban drag-and-drop.
func (h *DealHandler) MoveStage(c *gin.Context) {
	var body struct {
		Stage models.DealStage `json:"stage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal, err := h.Service.MoveStage(c.Param("id"), body.Stage)
	if err != nil {
		if err.Error() == "invalid pipeline stage" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}
