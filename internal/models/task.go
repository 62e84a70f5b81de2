// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

const (
	// TaskStatusTodo indicates a task that has not been started.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusInProgress indicates a task being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusDone indicates a completed task.
	TaskStatusDone TaskStatus = "done"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	// TaskPriorityLow is the lowest task priority.
	TaskPriorityLow TaskPriority = "low"
	// TaskPriorityMedium is the default task priority.
	TaskPriorityMedium TaskPriority = "medium"
	// TaskPriorityHigh is the highest task priority.
	TaskPriorityHigh TaskPriority = "high"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is a known task priority.
func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a to-do item owned by a single user.
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);default:'todo';index" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);default:'medium';index" json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	IsPublic    bool         `gorm:"default:false" json:"is_public"`
	OwnerID     uint         `gorm:"not null;index" json:"owner_id"`
	Owner       User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	// IsOverdue is not persisted; computed at read time from DueDate
	IsOverdue bool           `gorm:"-" json:"is_overdue"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Overdue reports whether the task's due date has passed relative to the
// calendar date of now. The comparison is date-granular, not a timestamp
// comparison: a task due yesterday is overdue, a task due today is not.
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today)
}
