package repository

import (
	"context"

	"github.com/yukikurage/todovault-api/internal/models"
)

// Lookups return (nil, nil) when no row matches. Updates and deletes on an
// absent id are silent no-ops; callers check existence with a prior read.

// TaskListRepository defines the data access for task lists
type TaskListRepository interface {
	// Create inserts a new list; an id collision is a constraint error
	Create(ctx context.Context, list *models.TaskList) error

	// FindByID finds a list by primary key
	FindByID(ctx context.Context, id string) (*models.TaskList, error)

	// List returns every list in storage order
	List(ctx context.Context) ([]models.TaskList, error)

	// Count returns the number of stored lists
	Count(ctx context.Context) (int64, error)

	// UpdateName sets the name column of a list
	UpdateName(ctx context.Context, id, name string) error

	// DeleteWithTasks removes a list and every task that references it in one transaction
	DeleteWithTasks(ctx context.Context, id string) error
}

// TaskRepository defines the data access for tasks
type TaskRepository interface {
	// Create inserts a new task; an id collision is a constraint error
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by primary key
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// ListByListID returns the tasks of a list in storage order
	ListByListID(ctx context.Context, listID string) ([]models.Task, error)

	// CountByListID returns the number of tasks referencing a list
	CountByListID(ctx context.Context, listID string) (int64, error)

	// UpdateField sets a single column of a task
	UpdateField(ctx context.Context, id string, field TaskField, value any) error

	// Delete removes a task row
	Delete(ctx context.Context, id string) error
}

// TaskField names a mutable task column.
type TaskField string

const (
	TaskFieldName        TaskField = "name"
	TaskFieldDescription TaskField = "description"
	TaskFieldPriority    TaskField = "priority"
	TaskFieldStatus      TaskField = "status"
)

// Valid reports whether f is an updatable column.
func (f TaskField) Valid() bool {
	switch f {
	case TaskFieldName, TaskFieldDescription, TaskFieldPriority, TaskFieldStatus:
		return true
	}
	return false
}
