package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todovault-api/internal/middleware"
)

// RouterConfig holds everything the router needs
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Lists          *TaskListHandler
	Tasks          *TaskHandler
	Health         *HealthHandler
}

// NewRouter registers every route on a fresh gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(cfg.Logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.GET("/health", cfg.Health.Health)

	lists := r.Group("/lists")
	{
		lists.POST("", cfg.Lists.CreateList)
		lists.GET("", cfg.Lists.ListLists)
		lists.GET("/:list_id", cfg.Lists.GetList)
		lists.PUT("/:list_id/name", cfg.Lists.RenameList)
		lists.DELETE("/:list_id", cfg.Lists.DeleteList)

		tasks := lists.Group("/:list_id/tasks")
		{
			tasks.POST("", cfg.Tasks.CreateTask)
			tasks.GET("", cfg.Tasks.ListTasks)
			tasks.GET("/:task_id", cfg.Tasks.GetTask)
			tasks.PUT("/:task_id/name", cfg.Tasks.UpdateTaskName)
			tasks.PUT("/:task_id/description", cfg.Tasks.UpdateTaskDescription)
			tasks.PUT("/:task_id/priority", cfg.Tasks.UpdateTaskPriority)
			tasks.PUT("/:task_id/status", cfg.Tasks.UpdateTaskStatus)
			tasks.DELETE("/:task_id", cfg.Tasks.DeleteTask)
		}
	}

	return r
}
