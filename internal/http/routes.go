package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-tracker-system.com/task-tracker-system/internal/http/middlewares"
)

func Register(e *echo.Echo, tasks *TaskHandler, users *UserHandler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", tasks.ListTasks)
	e.POST("/tasks", tasks.CreateTask)
	e.GET("/tasks/:id", tasks.GetTask)
	e.PUT("/tasks/:id", tasks.UpdateTask)
	e.DELETE("/tasks/:id", tasks.DeleteTask)

	e.GET("/users", users.ListUsers)
	e.POST("/users", users.CreateUser)
	e.GET("/users/:id", users.GetUser)
	e.PUT("/users/:id", users.UpdateUser)
	e.DELETE("/users/:id", users.DeleteUser)
}
