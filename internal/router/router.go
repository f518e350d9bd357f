package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/todo/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Task     *apiHandler.TaskHandler
	Theme    *apiHandler.ThemeHandler
	Activity *apiHandler.ActivityHandler
	Health   *apiHandler.HealthHandler
}

// New registers every route. The static /api/users segment takes priority
// over the {user_id} parameter.
func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/", handlers.Health.Root)
	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/auth/login", handlers.Auth.Login)
	r.POST("/auth/signup", handlers.Auth.Signup)

	// Protected routes
	r.GET("/api/users/theme", authMiddleware(handlers.Theme.GetTheme))
	r.PUT("/api/users/theme", authMiddleware(handlers.Theme.UpdateTheme))

	r.GET("/api/{user_id}/tasks", authMiddleware(handlers.Task.ListTasks))
	r.POST("/api/{user_id}/tasks", authMiddleware(handlers.Task.CreateTask))
	r.GET("/api/{user_id}/tasks/{id}", authMiddleware(handlers.Task.GetTask))
	r.PUT("/api/{user_id}/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/{user_id}/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))
	r.PATCH("/api/{user_id}/tasks/{id}/complete", authMiddleware(handlers.Task.ToggleTask))

	if handlers.Activity != nil {
		r.GET("/api/{user_id}/activity", authMiddleware(handlers.Activity.ListActivity))
	}

	return r
}
