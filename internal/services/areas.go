package services

import (
	"planner/backend/internal/cache"
	"planner/backend/internal/models"
	"planner/backend/internal/store"
)

type AreaService interface {
	Create(name string) (*models.Area, error)
	Get(id uint) (*models.Area, error)
	List() ([]models.Area, error)
	Update(id uint, patch models.AreaPatch) (*models.Area, error)
	Delete(id uint) error
}

type AreaServiceImpl struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewAreaService(s *store.Store, c *cache.RedisCache) *AreaServiceImpl {
	return &AreaServiceImpl{store: s, cache: c}
}

func (s *AreaServiceImpl) Create(name string) (*models.Area, error) {
	area := models.Area{Name: name}
	if err := s.store.CreateArea(&area); err != nil {
		return nil, err
	}
	return &area, nil
}

func (s *AreaServiceImpl) Get(id uint) (*models.Area, error) {
	return s.store.GetArea(id)
}

func (s *AreaServiceImpl) List() ([]models.Area, error) {
	return s.store.ListAreas()
}

func (s *AreaServiceImpl) Update(id uint, patch models.AreaPatch) (*models.Area, error) {
	return s.store.UpdateArea(id, patch)
}

// Delete cascades through projects, tasks and subtasks, so any cached task
// data may now be stale.
func (s *AreaServiceImpl) Delete(id uint) error {
	if err := s.store.DeleteArea(id); err != nil {
		return err
	}
	flushTaskCaches(s.cache)
	return nil
}
