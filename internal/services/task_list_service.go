package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yukikurage/todovault-api/internal/logging"
	"github.com/yukikurage/todovault-api/internal/models"
	"github.com/yukikurage/todovault-api/internal/repository"
)

// TaskListService handles task list business logic
type TaskListService struct {
	listRepo repository.TaskListRepository
}

// NewTaskListService creates a new TaskListService
func NewTaskListService(listRepo repository.TaskListRepository) *TaskListService {
	return &TaskListService{
		listRepo: listRepo,
	}
}

// CreateList validates the name and persists a new list
func (s *TaskListService) CreateList(ctx context.Context, name string) (*models.TaskList, error) {
	if name == "" {
		return nil, models.ErrNameRequired
	}

	list := models.NewTaskList(name)
	if err := s.listRepo.Create(ctx, list); err != nil {
		logStoreFailure(ctx, "CreateList", "list_id", list.ID, err)
		return nil, fmt.Errorf("failed to create task list: %w", err)
	}

	return list, nil
}

// GetAllLists returns every list, or an empty slice when there are none
func (s *TaskListService) GetAllLists(ctx context.Context) ([]models.TaskList, error) {
	count, err := s.listRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count task lists: %w", err)
	}
	if count == 0 {
		return []models.TaskList{}, nil
	}

	lists, err := s.listRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}
	return lists, nil
}

// GetList returns a list or ErrTaskListNotFound
func (s *TaskListService) GetList(ctx context.Context, listID string) (*models.TaskList, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task list: %w", err)
	}
	if list == nil {
		return nil, models.ErrTaskListNotFound
	}
	return list, nil
}

// RenameList changes the name of an existing list
func (s *TaskListService) RenameList(ctx context.Context, listID, name string) (*models.TaskList, error) {
	if name == "" {
		return nil, models.ErrNameRequired
	}

	list, err := s.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}

	if err := s.listRepo.UpdateName(ctx, list.ID, name); err != nil {
		logStoreFailure(ctx, "RenameList", "list_id", list.ID, err)
		return nil, fmt.Errorf("failed to rename task list: %w", err)
	}
	list.Name = name

	return list, nil
}

// DeleteList removes the list and all of its tasks in a single transaction.
// Deleting an absent list succeeds.
func (s *TaskListService) DeleteList(ctx context.Context, listID string) error {
	if err := s.listRepo.DeleteWithTasks(ctx, listID); err != nil {
		logStoreFailure(ctx, "DeleteList", "list_id", listID, err)
		return fmt.Errorf("failed to delete task list: %w", err)
	}
	return nil
}

func logStoreFailure(ctx context.Context, operation, idKey, id string, err error) {
	logging.FromContext(ctx).ErrorContext(ctx, "store operation failed",
		slog.String("operation", operation),
		slog.String(idKey, id),
		slog.Any("error", err),
	)
}
