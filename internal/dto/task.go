package dto

import "github.com/yukikurage/todovault-api/internal/models"

// TaskListDTO represents a task list in API responses
type TaskListDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses.
// Priority and Status are integer ordinals.
type TaskDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Status      int    `json:"status"`
	ListID      string `json:"list_id"`
}

// CreateTaskListRequest is the body of POST /lists
type CreateTaskListRequest struct {
	Name string `json:"name"`
}

// CreateTaskRequest is the body of POST /lists/:list_id/tasks
type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
	Status      *int   `json:"status"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// Conversion functions

// ToTaskListDTO converts a TaskList model to TaskListDTO
func ToTaskListDTO(list models.TaskList) TaskListDTO {
	return TaskListDTO{
		ID:   list.ID,
		Name: list.Name,
	}
}

// ToTaskListDTOs converts a slice of lists, never returning nil
func ToTaskListDTOs(lists []models.TaskList) []TaskListDTO {
	items := make([]TaskListDTO, len(lists))
	for i, list := range lists {
		items[i] = ToTaskListDTO(list)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Priority:    int(task.Priority),
		Status:      int(task.Status),
		ListID:      task.ListID,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
