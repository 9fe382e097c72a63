package store

import (
	"fmt"

	"planner/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateProject(project *models.Project) error {
	if project.Name == "" {
		return fmt.Errorf("%w: name", ErrValidation)
	}
	return s.db.Create(project).Error
}

func (s *Store) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (s *Store) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) ListProjectsByArea(areaID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("area_id = ?", areaID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) UpdateProject(id uint, patch models.ProjectPatch) (*models.Project, error) {
	var project models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&project)
		return tx.Save(&project).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes the project, its tasks and their subtasks in one
// transaction.
func (s *Store) DeleteProject(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return translate(err)
		}
		return deleteProjectTree(tx, id)
	})
}

func deleteProjectTree(tx *gorm.DB, id uint) error {
	var tasks []models.Task
	if err := tx.Where("project_id = ?", id).Find(&tasks).Error; err != nil {
		return err
	}
	for _, task := range tasks {
		if err := deleteTaskTree(tx, task.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Project{}, id).Error
}

// TaskCounts reports the total and completed task counts for a project. It
// backs the derived completion percentage and is always read fresh.
func (s *Store) TaskCounts(projectID uint) (total, completed int64, err error) {
	if err = s.db.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.Task{}).Where("project_id = ? AND completed = ?", projectID, true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
