package store

import (
	"fmt"

	"planner/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateArea(area *models.Area) error {
	if area.Name == "" {
		return fmt.Errorf("%w: name", ErrValidation)
	}
	return s.db.Create(area).Error
}

func (s *Store) GetArea(id uint) (*models.Area, error) {
	var area models.Area
	if err := s.db.First(&area, id).Error; err != nil {
		return nil, translate(err)
	}
	return &area, nil
}

func (s *Store) ListAreas() ([]models.Area, error) {
	var areas []models.Area
	if err := s.db.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *Store) UpdateArea(id uint, patch models.AreaPatch) (*models.Area, error) {
	var area models.Area
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&area, id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&area)
		return tx.Save(&area).Error
	})
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// DeleteArea removes the area and its full ownership subtree: every project
// assigned to it, those projects' tasks and those tasks' subtasks. The whole
// traversal runs in one transaction.
func (s *Store) DeleteArea(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var area models.Area
		if err := tx.First(&area, id).Error; err != nil {
			return translate(err)
		}

		var projects []models.Project
		if err := tx.Where("area_id = ?", id).Find(&projects).Error; err != nil {
			return err
		}
		for _, project := range projects {
			if err := deleteProjectTree(tx, project.ID); err != nil {
				return err
			}
		}

		return tx.Delete(&area).Error
	})
}
