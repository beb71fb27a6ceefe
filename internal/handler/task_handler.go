package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"agroworld/internal/model"
)

type TaskStore interface {
	Create(task *model.Task) error
	List() ([]model.Task, error)
	Toggle(id int64) (*bool, error)
	Delete(id int64) (bool, error)
}

type TaskHandler struct {
	repository TaskStore
}

func NewTaskHandler(repository TaskStore) *TaskHandler {
	return &TaskHandler{repository: repository}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.repository.List()
	if err != nil {
		slog.Error("error listing tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, TaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			IsCompleted: t.IsCompleted,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid task payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	task := model.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := h.repository.Create(&task); err != nil {
		slog.Error("error creating task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, CreateTaskResponse{Success: true, ID: task.ID})
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	status, err := h.repository.Toggle(id)
	if err != nil {
		slog.Error("error toggling task", "error", err, "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, ToggleTaskResponse{Success: true, Status: *status})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	deleted, err := h.repository.Delete(id)
	if err != nil {
		slog.Error("error deleting task", "error", err, "task_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, DeleteTaskResponse{Success: true})
}

func (h *TaskHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.List()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		slog.Warn("invalid task id", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return 0, false
	}
	return id, true
}
