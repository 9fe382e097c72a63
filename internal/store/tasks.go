package store

import (
	"fmt"
	"time"

	"planner/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateTask(task *models.Task) error {
	if task.Title == "" {
		return fmt.Errorf("%w: title", ErrValidation)
	}
	if task.Priority == "" {
		task.Priority = models.DefaultPriority
	}
	now := time.Now()
	task.Created = now
	task.Updated = now
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
	return s.db.Create(task).Error
}

func (s *Store) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Subtasks").First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *Store) ListTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Preload("Subtasks").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) ListTasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Preload("Subtasks").Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask merges the supplied fields and refreshes Updated. The timestamp
// bumps on every successful call, even when the patch is empty; Created is
// never touched.
func (s *Store) UpdateTask(id uint, patch models.TaskPatch) (*models.Task, error) {
	var task models.Task
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&task)
		task.Updated = time.Now()
		return tx.Omit(clause.Associations).Save(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetTask(id)
}

// DeleteTask removes the task together with its subtasks in one transaction.
func (s *Store) DeleteTask(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, id).Error; err != nil {
			return translate(err)
		}
		return deleteTaskTree(tx, id)
	})
}

func deleteTaskTree(tx *gorm.DB, id uint) error {
	if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Task{}, id).Error
}
