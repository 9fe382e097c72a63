package services

import (
	"planner/backend/internal/cache"
	"planner/backend/internal/models"
	"planner/backend/internal/store"
)

// ProjectWithCompletion is a project listing row carrying the derived
// completion percentage. The value is recomputed on every listing and is
// never stored or cached.
type ProjectWithCompletion struct {
	models.Project
	Completion float64 `json:"completion"`
}

type ProjectService interface {
	Create(name string, areaID *uint) (*models.Project, error)
	Get(id uint) (*models.Project, error)
	List() ([]ProjectWithCompletion, error)
	ListByArea(areaID uint) ([]models.Project, error)
	Completion(id uint) (float64, error)
	Update(id uint, patch models.ProjectPatch) (*models.Project, error)
	Delete(id uint) error
}

type ProjectServiceImpl struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewProjectService(s *store.Store, c *cache.RedisCache) *ProjectServiceImpl {
	return &ProjectServiceImpl{store: s, cache: c}
}

func (s *ProjectServiceImpl) Create(name string, areaID *uint) (*models.Project, error) {
	project := models.Project{Name: name, AreaID: areaID}
	if err := s.store.CreateProject(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectServiceImpl) Get(id uint) (*models.Project, error) {
	return s.store.GetProject(id)
}

func (s *ProjectServiceImpl) List() ([]ProjectWithCompletion, error) {
	projects, err := s.store.ListProjects()
	if err != nil {
		return nil, err
	}

	listing := make([]ProjectWithCompletion, 0, len(projects))
	for _, project := range projects {
		completion, err := s.Completion(project.ID)
		if err != nil {
			return nil, err
		}
		listing = append(listing, ProjectWithCompletion{
			Project:    project,
			Completion: completion,
		})
	}
	return listing, nil
}

func (s *ProjectServiceImpl) ListByArea(areaID uint) ([]models.Project, error) {
	return s.store.ListProjectsByArea(areaID)
}

// Completion returns the percentage of completed tasks in the project. A
// project with no tasks reports 100.
func (s *ProjectServiceImpl) Completion(id uint) (float64, error) {
	total, completed, err := s.store.TaskCounts(id)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 100, nil
	}
	return float64(completed) / float64(total) * 100, nil
}

func (s *ProjectServiceImpl) Update(id uint, patch models.ProjectPatch) (*models.Project, error) {
	return s.store.UpdateProject(id, patch)
}

// Delete cascades through the project's tasks and subtasks.
func (s *ProjectServiceImpl) Delete(id uint) error {
	if err := s.store.DeleteProject(id); err != nil {
		return err
	}
	flushTaskCaches(s.cache)
	return nil
}
