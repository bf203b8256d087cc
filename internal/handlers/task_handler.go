package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
	"weddinghub/internal/services"
)

// TaskHandler handles checklist task requests.
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents the request payload for creating a task.
type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required,min=1,max=300"`
	IsUrgent       bool   `json:"is_urgent"`
	TimelinePeriod string `json:"timeline_period" binding:"omitempty,timeline_period"`
	DueDate        string `json:"due_date"`
}

// UpdateTaskRequest represents the request payload for updating a task.
type UpdateTaskRequest struct {
	Title          string  `json:"title" binding:"omitempty,min=1,max=300"`
	IsUrgent       *bool   `json:"is_urgent"`
	TimelinePeriod *string `json:"timeline_period" binding:"omitempty,timeline_period"`
	DueDate        *string `json:"due_date"`
}

// CreateTask handles adding a task to a wedding checklist.
// @Summary     Create a task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Wedding ID"
// @Param       request body CreateTaskRequest true "Task details"
// @Success     201 {object} models.Task "Task created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Wedding not found"
// @Router      /weddings/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.CreateTask(weddingID, req.Title, req.IsUrgent, models.TimelinePeriod(req.TimelinePeriod), dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetWeddingTasks lists tasks with optional completed and period filters.
// @Summary     List tasks
// @Tags        tasks
// @Produce     json
// @Param       id        path  int    true  "Wedding ID"
// @Param       completed query bool   false "Filter by completion state"
// @Param       period    query string false "Filter by timeline period"
// @Success     200 {array} models.Task "Tasks"
// @Router      /weddings/{id}/tasks [get]
func (h *TaskHandler) GetWeddingTasks(c *gin.Context) {
	weddingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.TaskFilter
	if raw, ok := c.GetQuery("completed"); ok {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "completed must be true or false"))
			return
		}
		filter.Completed = &completed
	}
	if raw, ok := c.GetQuery("period"); ok {
		period := models.TimelinePeriod(raw)
		filter.Period = &period
	}

	tasks, err := h.taskService.GetWeddingTasks(weddingID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ToggleTask flips a task between open and completed.
// @Summary     Toggle task completion
// @Tags        tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} models.Task "Updated task"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.ToggleTask(taskID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTask handles editing a task.
// @Summary     Update a task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Task ID"
// @Param       request body UpdateTaskRequest true "Updated task fields"
// @Success     200 {object} models.Task "Updated task"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var period *models.TimelinePeriod
	if req.TimelinePeriod != nil {
		p := models.TimelinePeriod(*req.TimelinePeriod)
		period = &p
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := parseDate(*req.DueDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.UpdateTask(taskID, req.Title, req.IsUrgent, period, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles removing a task.
// @Summary     Delete a task
// @Tags        tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} MessageResponse "Task deleted"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taskService.DeleteTask(taskID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
