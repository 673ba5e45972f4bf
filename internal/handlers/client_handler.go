package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
	Props   *services.PropertyService
	Loyalty *services.LoyaltyService
}

func NewClientHandler(service *services.ClientService, props *services.PropertyService, loyalty *services.LoyaltyService) *ClientHandler {
	return &ClientHandler{Service: service, Props: props, Loyalty: loyalty}
}

func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Query("q")))
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// SavedProperties resolves the saved list; dangling ids are dropped, so
// the response may be shorter than the client's id list.
func (h *ClientHandler) SavedProperties(c *gin.Context) {
	props, err := h.Service.SavedProperties(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, props)
}

// Matches lists properties that fit the client's stored preferences.
func (h *ClientHandler) Matches(c *gin.Context) {
	client, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, h.Props.MatchingFor(client))
}

func (h *ClientHandler) AwardPoints(c *gin.Context) {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.Loyalty.Award(c.Param("id"), body.Delta)
	if err != nil {
		if err.Error() == "points delta must be non-negative" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) LoyaltySummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_points": h.Loyalty.Total(),
		"clients":      h.Service.List(""),
	})
}
