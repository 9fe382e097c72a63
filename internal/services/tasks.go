package services

import (
	"planner/backend/internal/models"
	"planner/backend/internal/store"
)

type TaskService interface {
	Create(task models.Task) (*models.Task, error)
	Get(id uint) (*models.Task, error)
	List() ([]models.Task, error)
	ListByProject(projectID uint) ([]models.Task, error)
	Update(id uint, patch models.TaskPatch) (*models.Task, error)
	MarkComplete(id uint) (*models.Task, error)
	MarkIncomplete(id uint) (*models.Task, error)
	Delete(id uint) error
}

type TaskServiceImpl struct {
	store *store.Store
}

func NewTaskService(s *store.Store) *TaskServiceImpl {
	return &TaskServiceImpl{store: s}
}

// Create assigns the Inbox category when the task arrives with neither a
// project nor a category. The classification happens exactly once, here;
// later updates never re-apply it.
func (s *TaskServiceImpl) Create(task models.Task) (*models.Task, error) {
	if task.ProjectID == nil && task.Category == nil {
		inbox := models.InboxCategory
		task.Category = &inbox
	}
	if err := s.store.CreateTask(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskServiceImpl) Get(id uint) (*models.Task, error) {
	return s.store.GetTask(id)
}

func (s *TaskServiceImpl) List() ([]models.Task, error) {
	return s.store.ListTasks()
}

func (s *TaskServiceImpl) ListByProject(projectID uint) ([]models.Task, error) {
	return s.store.ListTasksByProject(projectID)
}

func (s *TaskServiceImpl) Update(id uint, patch models.TaskPatch) (*models.Task, error) {
	return s.store.UpdateTask(id, patch)
}

// MarkComplete and MarkIncomplete are conveniences over Update. Both fail
// with store.ErrNotFound for an unknown id rather than silently succeeding.
func (s *TaskServiceImpl) MarkComplete(id uint) (*models.Task, error) {
	completed := true
	return s.store.UpdateTask(id, models.TaskPatch{Completed: &completed})
}

func (s *TaskServiceImpl) MarkIncomplete(id uint) (*models.Task, error) {
	completed := false
	return s.store.UpdateTask(id, models.TaskPatch{Completed: &completed})
}

func (s *TaskServiceImpl) Delete(id uint) error {
	return s.store.DeleteTask(id)
}
