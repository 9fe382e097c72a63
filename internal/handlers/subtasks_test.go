package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"planner/backend/internal/handlers"
	"planner/backend/internal/models"
	"planner/backend/internal/store"

	"github.com/gin-gonic/gin"
)

type MockSubtaskService struct {
	taskMissing bool
	created     []models.Subtask
}

func (m *MockSubtaskService) Create(taskID uint, title string, completed bool) (*models.Subtask, error) {
	if m.taskMissing {
		return nil, store.ErrNotFound
	}
	subtask := models.Subtask{ID: uint(len(m.created) + 1), TaskID: taskID, Title: title, Completed: completed}
	m.created = append(m.created, subtask)
	return &subtask, nil
}

func (m *MockSubtaskService) ListByTask(taskID uint) ([]models.Subtask, error) {
	if m.taskMissing {
		return nil, store.ErrNotFound
	}
	return m.created, nil
}

func (m *MockSubtaskService) Update(id uint, patch models.SubtaskPatch) (*models.Subtask, error) {
	subtask := models.Subtask{ID: id, TaskID: 1, Title: "Draft"}
	patch.Apply(&subtask)
	return &subtask, nil
}

func (m *MockSubtaskService) Delete(id uint) error {
	return nil
}

func setupSubtaskHandler() (*handlers.SubtaskHandler, *MockSubtaskService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	mockService := &MockSubtaskService{}
	handler := handlers.NewSubtaskHandler(mockService)
	router := gin.New()
	return handler, mockService, router
}

func TestCreateSubtask(t *testing.T) {
	handler, mockService, router := setupSubtaskHandler()

	router.POST("/tasks/:id/subtasks", handler.CreateSubtask)

	req, _ := http.NewRequest("POST", "/tasks/1/subtasks", bytes.NewBuffer([]byte(`{"title":"Draft"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if len(mockService.created) != 1 || mockService.created[0].TaskID != 1 {
		t.Errorf("Expected subtask created for task 1, got %v", mockService.created)
	}
}

func TestCreateSubtaskMissingTask(t *testing.T) {
	handler, mockService, router := setupSubtaskHandler()

	router.POST("/tasks/:id/subtasks", handler.CreateSubtask)

	mockService.taskMissing = true

	req, _ := http.NewRequest("POST", "/tasks/99/subtasks", bytes.NewBuffer([]byte(`{"title":"Draft"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if len(mockService.created) != 0 {
		t.Errorf("Expected no subtask persisted, got %v", mockService.created)
	}
}

func TestUpdateSubtaskUsesPost(t *testing.T) {
	handler, _, router := setupSubtaskHandler()

	router.POST("/subtasks/:id", handler.UpdateSubtask)

	req, _ := http.NewRequest("POST", "/subtasks/2", bytes.NewBuffer([]byte(`{"completed":true}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestDeleteSubtaskSingularPath(t *testing.T) {
	handler, _, router := setupSubtaskHandler()

	router.DELETE("/subtask/:id", handler.DeleteSubtask)

	req, _ := http.NewRequest("DELETE", "/subtask/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}
