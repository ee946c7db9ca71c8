package models

import "github.com/google/uuid"

// TaskList is a named container of tasks.
type TaskList struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Relations
	Tasks []Task `gorm:"foreignKey:ListID;references:ID" json:"-"`
}

// TableName pins the table name used by the persisted layout.
func (TaskList) TableName() string {
	return "tasklists"
}

// NewTaskList mints a list with a fresh identifier. Nothing is persisted.
func NewTaskList(name string) *TaskList {
	return &TaskList{
		ID:   uuid.NewString(),
		Name: name,
	}
}
