package handlers

import (
	"errors"
	"net/http"

	"planner/backend/internal/models"
	"planner/backend/internal/services"
	"planner/backend/internal/store"

	"github.com/gin-gonic/gin"
)

type SubtaskHandler struct {
	subtaskService services.SubtaskService
}

func NewSubtaskHandler(subtaskService services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

// CreateSubtask fails with 404 before anything is persisted when the owning
// task does not exist.
func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	var input struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := h.subtaskService.Create(taskID, input.Title, input.Completed)
	if err != nil {
		// A NotFound here means the owning task, not the subtask.
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		handleSubtaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subtask)
}

func (h *SubtaskHandler) GetSubtasks(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	subtasks, err := h.subtaskService.ListByTask(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		handleSubtaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtasks)
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	var patch models.SubtaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := h.subtaskService.Update(id, patch)
	if err != nil {
		handleSubtaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtask)
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
		return
	}
	if err := h.subtaskService.Delete(id); err != nil {
		handleSubtaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subtask deleted!"})
}

func handleSubtaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "subtask not found"})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process subtask request"})
	}
}
