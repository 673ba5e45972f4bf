package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/repositories"
)

// respondErr maps a service error to a status code: missing records are
// 404, everything else 500.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, repositories.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
