package models

import (
	"time"
)

// Area is the top-level grouping entity. Deleting an Area removes its
// Projects and, transitively, their Tasks and Subtasks.
type Area struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// Project groups Tasks and may optionally belong to an Area.
type Project struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	AreaID *uint  `json:"area_id" gorm:"index"`
}

type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   *uint      `json:"project_id" gorm:"index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	Category    *string    `json:"category"`
	Priority    string     `json:"priority" gorm:"default:'Medium'"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
	Created     time.Time  `json:"created"`
	Updated     time.Time  `json:"updated"`

	Subtasks []Subtask `json:"subtasks" gorm:"foreignKey:TaskID"`
}

// Subtask always belongs to exactly one Task.
type Subtask struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	TaskID    uint   `json:"task_id" gorm:"not null;index"`
	Title     string `json:"title" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"default:false"`
}

// DefaultPriority is applied to Tasks created without an explicit priority.
const DefaultPriority = "Medium"

// InboxCategory is assigned once, at creation time, to Tasks that arrive
// with neither a project nor a category.
const InboxCategory = "Inbox"
