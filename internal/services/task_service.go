package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/todovault-api/internal/models"
	"github.com/yukikurage/todovault-api/internal/repository"
)

// TaskService handles task business logic.
//
// Every update is a read followed by a single-column write. Two callers
// updating the same task concurrently are not serialized; the last write wins.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
// Nil Priority and Status default to NONE and TODO.
type CreateTaskInput struct {
	Name        string
	Description string
	Priority    *int
	Status      *int
}

// CreateTask validates the input and persists a new task in the given list.
// The list is not checked for existence.
func (s *TaskService) CreateTask(ctx context.Context, listID string, input CreateTaskInput) (*models.Task, error) {
	if input.Name == "" {
		return nil, models.ErrNameRequired
	}

	priority := models.PriorityNone
	if input.Priority != nil {
		p, err := models.ParsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		priority = p
	}

	status := models.StatusTodo
	if input.Status != nil {
		st, err := models.ParseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	task := models.NewTask(listID, input.Name, input.Description, priority, status)
	if err := s.taskRepo.Create(ctx, task); err != nil {
		logStoreFailure(ctx, "CreateTask", "task_id", task.ID, err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTasksForList returns the tasks of a list, or an empty slice when there are none
func (s *TaskService) GetTasksForList(ctx context.Context, listID string) ([]models.Task, error) {
	count, err := s.taskRepo.CountByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	if count == 0 {
		return []models.Task{}, nil
	}

	tasks, err := s.taskRepo.ListByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task or ErrTaskNotFound
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, models.ErrTaskNotFound
	}
	return task, nil
}

// UpdateTaskName renames a task. The non-empty rule applies at creation only.
func (s *TaskService) UpdateTaskName(ctx context.Context, taskID, name string) (*models.Task, error) {
	return s.updateField(ctx, taskID, repository.TaskFieldName, name, func(t *models.Task) {
		t.Name = name
	})
}

// UpdateTaskDescription replaces the description of a task
func (s *TaskService) UpdateTaskDescription(ctx context.Context, taskID, description string) (*models.Task, error) {
	return s.updateField(ctx, taskID, repository.TaskFieldDescription, description, func(t *models.Task) {
		t.Description = description
	})
}

// UpdateTaskPriority sets the priority from its ordinal
func (s *TaskService) UpdateTaskPriority(ctx context.Context, taskID string, ordinal int) (*models.Task, error) {
	priority, err := models.ParsePriority(ordinal)
	if err != nil {
		return nil, err
	}
	return s.updateField(ctx, taskID, repository.TaskFieldPriority, priority, func(t *models.Task) {
		t.Priority = priority
	})
}

// UpdateTaskStatus sets the status from its ordinal
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID string, ordinal int) (*models.Task, error) {
	status, err := models.ParseStatus(ordinal)
	if err != nil {
		return nil, err
	}
	return s.updateField(ctx, taskID, repository.TaskFieldStatus, status, func(t *models.Task) {
		t.Status = status
	})
}

// DeleteTask removes an existing task
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		logStoreFailure(ctx, "DeleteTask", "task_id", task.ID, err)
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// updateField loads the task, writes one column and applies the same change in memory.
func (s *TaskService) updateField(ctx context.Context, taskID string, field repository.TaskField, value any, apply func(*models.Task)) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateField(ctx, task.ID, field, value); err != nil {
		logStoreFailure(ctx, "UpdateTask", "task_id", task.ID, err)
		return nil, fmt.Errorf("failed to update task %s: %w", field, err)
	}
	apply(task)

	return task, nil
}
