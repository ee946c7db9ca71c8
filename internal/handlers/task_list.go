package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todovault-api/internal/dto"
	apierrors "github.com/yukikurage/todovault-api/internal/errors"
	"github.com/yukikurage/todovault-api/internal/services"
)

type TaskListHandler struct {
	listService *services.TaskListService
}

func NewTaskListHandler(listService *services.TaskListService) *TaskListHandler {
	return &TaskListHandler{
		listService: listService,
	}
}

// CreateList creates a new task list
func (h *TaskListHandler) CreateList(c *gin.Context) {
	var req dto.CreateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), req.Name)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListDTO(*list))
}

// ListLists returns every task list
func (h *TaskListHandler) ListLists(c *gin.Context) {
	lists, err := h.listService.GetAllLists(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListDTOs(lists))
}

// GetList returns a single task list
func (h *TaskListHandler) GetList(c *gin.Context) {
	list, err := h.listService.GetList(c.Request.Context(), c.Param("list_id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListDTO(*list))
}

// RenameList changes the name of a task list
func (h *TaskListHandler) RenameList(c *gin.Context) {
	list, err := h.listService.RenameList(c.Request.Context(), c.Param("list_id"), c.Query("new_name"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListDTO(*list))
}

// DeleteList deletes a task list and its tasks; an unknown list still succeeds
func (h *TaskListHandler) DeleteList(c *gin.Context) {
	if err := h.listService.DeleteList(c.Request.Context(), c.Param("list_id")); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "List deleted successfully"})
}
