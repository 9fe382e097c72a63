package models

import "time"

// Patch types carry partial updates. A nil field means "not supplied, keep
// the stored value"; there is deliberately no way to express clearing an
// optional field back to null. Created and Updated are absent on purpose so
// clients can never set them.

type AreaPatch struct {
	Name *string `json:"name"`
}

func (p AreaPatch) Apply(a *Area) {
	if p.Name != nil {
		a.Name = *p.Name
	}
}

type ProjectPatch struct {
	Name   *string `json:"name"`
	AreaID *uint   `json:"area_id"`
}

func (p ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.AreaID != nil {
		pr.AreaID = p.AreaID
	}
}

type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	ProjectID   *uint      `json:"project_id"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.ProjectID != nil {
		t.ProjectID = p.ProjectID
	}
	if p.Category != nil {
		t.Category = p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Tags != nil {
		t.Tags = p.Tags
	}
}

type SubtaskPatch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (p SubtaskPatch) Apply(s *Subtask) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}
}
