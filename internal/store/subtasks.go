package store

import (
	"fmt"

	"planner/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateSubtask(subtask *models.Subtask) error {
	if subtask.Title == "" {
		return fmt.Errorf("%w: title", ErrValidation)
	}
	if subtask.TaskID == 0 {
		return fmt.Errorf("%w: task_id", ErrValidation)
	}
	return s.db.Create(subtask).Error
}

func (s *Store) GetSubtask(id uint) (*models.Subtask, error) {
	var subtask models.Subtask
	if err := s.db.First(&subtask, id).Error; err != nil {
		return nil, translate(err)
	}
	return &subtask, nil
}

func (s *Store) ListSubtasksByTask(taskID uint) ([]models.Subtask, error) {
	var subtasks []models.Subtask
	if err := s.db.Where("task_id = ?", taskID).Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (s *Store) UpdateSubtask(id uint, patch models.SubtaskPatch) (*models.Subtask, error) {
	var subtask models.Subtask
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subtask, id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&subtask)
		return tx.Save(&subtask).Error
	})
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (s *Store) DeleteSubtask(id uint) error {
	result := s.db.Delete(&models.Subtask{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
