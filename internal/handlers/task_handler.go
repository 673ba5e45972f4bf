package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"estatecrm/internal/models"
	"estatecrm/internal/services"
)

type TaskHandler struct {
	Service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

// List supports ?assignee= and ?date=YYYY-MM-DD (local calendar day).
func (h *TaskHandler) List(c *gin.Context) {
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusOK, h.Service.ForDay(day))
		return
	}
	c.JSON(http.StatusOK, h.Service.List(c.Query("assignee")))
}

// Calendar returns the month grid: tasks grouped by due date. Defaults
// to the current month, or ?month=YYYY-MM.
func (h *TaskHandler) Calendar(c *gin.Context) {
	ref := time.Now()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.ParseInLocation("2006-01", monthStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
			return
		}
		ref = parsed
	}
	c.JSON(http.StatusOK, gin.H{
		"month": ref.Format("2006-01"),
		"days":  h.Service.ForMonth(ref.Year(), ref.Month()),
	})
}

func (h *TaskHandler) Upcoming(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Upcoming(time.Now()))
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(task)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	var body struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateStatus(c.Param("id"), body.Status); err != nil {
		if err.Error() == "invalid task status" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
