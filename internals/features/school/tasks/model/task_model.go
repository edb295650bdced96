package model

import (
	"time"

	"github.com/google/uuid"
)

// Task status enum, mirrored by a CHECK constraint in the migration:
//
//	ALTER TABLE tasks ADD CONSTRAINT chk_tasks_status
//	CHECK (task_status IN ('ToDo','InProgress','Completed','Archived'));
const (
	StatusToDo       = "ToDo"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusArchived   = "Archived"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type TaskModel struct {
	TaskID       uuid.UUID `gorm:"column:task_id;type:uuid;default:gen_random_uuid();primaryKey" json:"task_id"`
	TaskSchoolID uuid.UUID `gorm:"column:task_school_id;type:uuid;not null;index:idx_tasks_school_id" json:"task_school_id"`
	TaskUserID   uuid.UUID `gorm:"column:task_user_id;type:uuid;not null;index:idx_tasks_user_id" json:"task_user_id"`

	TaskTitle       string     `gorm:"column:task_title;type:varchar(255);not null" json:"task_title"`
	TaskDescription string     `gorm:"column:task_description;type:text" json:"task_description"`
	TaskStatus      string     `gorm:"column:task_status;type:varchar(20);not null;default:'ToDo'" json:"task_status"`
	TaskPriority    string     `gorm:"column:task_priority;type:varchar(20);not null;default:'Medium'" json:"task_priority"`
	TaskDueDate     *time.Time `gorm:"column:task_due_date;type:timestamptz" json:"task_due_date,omitempty"`

	TaskCreatedAt time.Time `gorm:"column:task_created_at;type:timestamptz;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time `gorm:"column:task_updated_at;type:timestamptz;autoUpdateTime" json:"task_updated_at"`

	// Tasks are never hard-deleted, only archived.
}

func (TaskModel) TableName() string {
	return "tasks"
}
