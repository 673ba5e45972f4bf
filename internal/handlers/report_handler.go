package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
	Tasks   services.TaskService
}

func NewReportHandler(service *services.ReportService, tasks services.TaskService) *ReportHandler {
	return &ReportHandler{Service: service, Tasks: tasks}
}

// Dashboard returns the re-derived metric snapshot plus today's agenda.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics":     h.Service.Dashboard(),
		"tasks_today": h.Tasks.ForDay(time.Now()),
	})
}

func (h *ReportHandler) Pipeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Pipeline())
}

func (h *ReportHandler) Funnel(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Funnel())
}

func (h *ReportHandler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Locations())
}

func (h *ReportHandler) Agents(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Agents())
}

func (h *ReportHandler) LeadSources(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.LeadSources())
}
