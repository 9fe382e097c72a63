package services

import (
	"fmt"
	"time"

	"planner/backend/internal/cache"
	"planner/backend/internal/models"
)

// CachedTaskService decorates a TaskService with a redis read-through cache
// for task reads. Every mutation invalidates bluntly. Project completion is
// not served from here and stays uncached.
type CachedTaskService struct {
	taskService TaskService
	cache       *cache.RedisCache
}

func NewCachedTaskService(taskService TaskService, cacheInstance *cache.RedisCache) *CachedTaskService {
	return &CachedTaskService{
		taskService: taskService,
		cache:       cacheInstance,
	}
}

func (s *CachedTaskService) Create(task models.Task) (*models.Task, error) {
	created, err := s.taskService.Create(task)
	if err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return created, nil
}

func (s *CachedTaskService) Get(id uint) (*models.Task, error) {
	cacheKey := fmt.Sprintf("task:%d", id)

	var cachedTask models.Task
	if err := s.cache.Get(cacheKey, &cachedTask); err == nil {
		return &cachedTask, nil
	}

	task, err := s.taskService.Get(id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, task, 30*time.Minute)

	return task, nil
}

func (s *CachedTaskService) List() ([]models.Task, error) {
	cacheKey := "all_tasks"

	var cachedTasks []models.Task
	if err := s.cache.Get(cacheKey, &cachedTasks); err == nil {
		return cachedTasks, nil
	}

	tasks, err := s.taskService.List()
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, tasks, 10*time.Minute)

	return tasks, nil
}

func (s *CachedTaskService) ListByProject(projectID uint) ([]models.Task, error) {
	cacheKey := fmt.Sprintf("project_tasks:%d", projectID)

	var cachedTasks []models.Task
	if err := s.cache.Get(cacheKey, &cachedTasks); err == nil {
		return cachedTasks, nil
	}

	tasks, err := s.taskService.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, tasks, 15*time.Minute)

	return tasks, nil
}

func (s *CachedTaskService) Update(id uint, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.taskService.Update(id, patch)
	if err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return task, nil
}

func (s *CachedTaskService) MarkComplete(id uint) (*models.Task, error) {
	task, err := s.taskService.MarkComplete(id)
	if err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return task, nil
}

func (s *CachedTaskService) MarkIncomplete(id uint) (*models.Task, error) {
	task, err := s.taskService.MarkIncomplete(id)
	if err != nil {
		return nil, err
	}
	flushTaskCaches(s.cache)
	return task, nil
}

func (s *CachedTaskService) Delete(id uint) error {
	if err := s.taskService.Delete(id); err != nil {
		return err
	}
	flushTaskCaches(s.cache)
	return nil
}

// flushTaskCaches drops every cached task view. Called after any mutation
// that can change task state, including cascade deletes from areas and
// projects. Nil-safe so services work without redis configured.
func flushTaskCaches(c *cache.RedisCache) {
	if c == nil {
		return
	}
	c.Delete("all_tasks")
	c.DeletePattern("task:*")
	c.DeletePattern("project_tasks:*")
}
