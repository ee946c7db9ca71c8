package models

import "github.com/google/uuid"

// Task is a unit of work owned by exactly one TaskList.
type Task struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Priority    Priority `gorm:"type:integer" json:"priority"`
	Status      Status   `gorm:"type:integer" json:"status"`
	ListID      string   `gorm:"column:list_id;size:36;index" json:"list_id"`
}

// TableName pins the table name used by the persisted layout.
func (Task) TableName() string {
	return "tasks"
}

// NewTask mints a task with a fresh identifier. Nothing is persisted.
func NewTask(listID, name, description string, priority Priority, status Status) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Priority:    priority,
		Status:      status,
		ListID:      listID,
	}
}
