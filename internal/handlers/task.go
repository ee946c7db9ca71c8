package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todovault-api/internal/dto"
	apierrors "github.com/yukikurage/todovault-api/internal/errors"
	"github.com/yukikurage/todovault-api/internal/models"
	"github.com/yukikurage/todovault-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task in the list named by the path
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), c.Param("list_id"), services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ListTasks returns the tasks of a list
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasksForList(c.Request.Context(), c.Param("list_id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	h.respondTask(c, func() (*models.Task, error) {
		return h.taskService.GetTask(c.Request.Context(), c.Param("task_id"))
	})
}

// UpdateTaskName renames a task from the new_name query parameter
func (h *TaskHandler) UpdateTaskName(c *gin.Context) {
	name, ok := requiredQuery(c, "new_name")
	if !ok {
		return
	}
	h.respondTask(c, func() (*models.Task, error) {
		return h.taskService.UpdateTaskName(c.Request.Context(), c.Param("task_id"), name)
	})
}

// UpdateTaskDescription replaces the description from the new_description query parameter.
// An explicitly empty value clears it.
func (h *TaskHandler) UpdateTaskDescription(c *gin.Context) {
	description, ok := requiredQuery(c, "new_description")
	if !ok {
		return
	}
	h.respondTask(c, func() (*models.Task, error) {
		return h.taskService.UpdateTaskDescription(c.Request.Context(), c.Param("task_id"), description)
	})
}

// UpdateTaskPriority sets the priority from the new_priority query parameter
func (h *TaskHandler) UpdateTaskPriority(c *gin.Context) {
	ordinal, ok := queryOrdinal(c, "new_priority")
	if !ok {
		return
	}
	h.respondTask(c, func() (*models.Task, error) {
		return h.taskService.UpdateTaskPriority(c.Request.Context(), c.Param("task_id"), ordinal)
	})
}

// UpdateTaskStatus sets the status from the new_status query parameter
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	ordinal, ok := queryOrdinal(c, "new_status")
	if !ok {
		return
	}
	h.respondTask(c, func() (*models.Task, error) {
		return h.taskService.UpdateTaskStatus(c.Request.Context(), c.Param("task_id"), ordinal)
	})
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("task_id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}

func (h *TaskHandler) respondTask(c *gin.Context, fn func() (*models.Task, error)) {
	task, err := fn()
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// requiredQuery reads a query parameter that must be present, possibly empty
func requiredQuery(c *gin.Context, key string) (string, bool) {
	value, exists := c.GetQuery(key)
	if !exists {
		apierrors.BadRequest(c, "Missing query parameter "+key)
		return "", false
	}
	return value, true
}

// queryOrdinal reads a required integer query parameter, answering 400 when it is absent or malformed
func queryOrdinal(c *gin.Context, key string) (int, bool) {
	raw, ok := requiredQuery(c, key)
	if !ok {
		return 0, false
	}

	ordinal, err := strconv.Atoi(raw)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+key)
		return 0, false
	}
	return ordinal, true
}
