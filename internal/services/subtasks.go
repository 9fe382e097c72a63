package services

import (
	"planner/backend/internal/cache"
	"planner/backend/internal/models"
	"planner/backend/internal/store"
)

type SubtaskService interface {
	Create(taskID uint, title string, completed bool) (*models.Subtask, error)
	ListByTask(taskID uint) ([]models.Subtask, error)
	Update(id uint, patch models.SubtaskPatch) (*models.Subtask, error)
	Delete(id uint) error
}

// SubtaskServiceImpl flushes cached task views on every mutation because
// task reads embed subtasks inline.
type SubtaskServiceImpl struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewSubtaskService(s *store.Store, c *cache.RedisCache) *SubtaskServiceImpl {
	return &SubtaskServiceImpl{store: s, cache: c}
}

// Create resolves the owning task first so a missing parent fails before
// anything is written; orphan subtasks cannot be created.
func (s *SubtaskServiceImpl) Create(taskID uint, title string, completed bool) (*models.Subtask, error) {
	task, err := s.store.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	subtask := models.Subtask{
		TaskID:    task.ID,
		Title:     title,
		Completed: completed,
	}
	if err := s.store.CreateSubtask(&subtask); err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return &subtask, nil
}

func (s *SubtaskServiceImpl) ListByTask(taskID uint) ([]models.Subtask, error) {
	if _, err := s.store.GetTask(taskID); err != nil {
		return nil, err
	}
	return s.store.ListSubtasksByTask(taskID)
}

func (s *SubtaskServiceImpl) Update(id uint, patch models.SubtaskPatch) (*models.Subtask, error) {
	subtask, err := s.store.UpdateSubtask(id, patch)
	if err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return subtask, nil
}

func (s *SubtaskServiceImpl) Delete(id uint) error {
	if err := s.store.DeleteSubtask(id); err != nil {
		return err
	}
	flushTaskCaches(s.cache)
	return nil
}
