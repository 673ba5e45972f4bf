package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// leadView is a lead with the assignee resolved for display.
type leadView struct {
	models.Lead
	AgentName string `json:"agent_name"`
}

func (h *LeadHandler) List(c *gin.Context) {
	leads := h.Service.List(c.Query("q"))
	out := make([]leadView, 0, len(leads))
	for _, l := range leads {
		out = append(out, leadView{Lead: l, AgentName: h.Service.AgentName(l)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	lead, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, leadView{Lead: lead, AgentName: h.Service.AgentName(lead)})
}

func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Service.Create(lead))
}

func (h *LeadHandler) Assign(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Assign(c.Param("id"), body.UserID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.LeadStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateStatus(c.Param("id"), body.Status); err != nil {
		if err.Error() == "invalid lead status" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
