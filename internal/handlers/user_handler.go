package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}
