package handler

import (
	"strings"
	"time"

	"smartbuddy/dto"
	"smartbuddy/model"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *usecase.TasksService
}

func NewTaskHandler(service *usecase.TasksService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title       string         `json:"title" binding:"required"`
		Description string         `json:"description"`
		Priority    model.Priority `json:"priority"`
		DueDate     time.Time      `json:"due_date" binding:"required"`
		Difficulty  int            `json:"difficulty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), userID.(string), req.Title, req.Description, req.Priority, req.DueDate, req.Difficulty)
	if err != nil {
		if strings.Contains(err.Error(), "required") ||
			strings.Contains(err.Error(), "invalid") ||
			strings.Contains(err.Error(), "difficulty") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tasks, err := h.service.GetUserTasks(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	var req struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		Priority    model.Priority   `json:"priority"`
		Status      model.TaskStatus `json:"status"`
		DueDate     *time.Time       `json:"due_date"`
		Difficulty  int              `json:"difficulty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.service.UpdateTask(c.Request.Context(), taskID, userID.(string), req.Title, req.Description, req.Priority, req.Status, req.DueDate, req.Difficulty)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Task not found")
			return
		}
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "difficulty") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Task updated successfully"})
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	task, err := h.service.CompleteTask(c.Request.Context(), taskID, userID.(string))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), taskID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID.(string), time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, stats)
}
