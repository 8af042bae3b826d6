// Package server assembles the fiber application: routes, the request
// authenticator, and the error boundary that renders every failure as a
// structured ErrorResponse.
package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pragadeesh-19/Task-Management/auth"
	"github.com/Pragadeesh-19/Task-Management/departments"
	"github.com/Pragadeesh-19/Task-Management/middleware/jwtware"
	"github.com/Pragadeesh-19/Task-Management/tasks"
)

// Deps is everything the HTTP surface composes against
type Deps struct {
	Auther          auth.Authenticator
	TokenService    auth.TokenService
	PrincipalLoader jwtware.PrincipalLoader
	Tasks           *tasks.Service
	Departments     *departments.Service
	Config          auth.Config
	Logger          auth.Logger
}

// New builds the fiber app with all routes registered
func New(deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	app := fiber.New(fiber.Config{
		AppName:      "task-management",
		ErrorHandler: ErrorHandler(logger),
	})

	RegisterRoutes(app, deps, logger)

	return app
}

// RegisterRoutes mounts the public auth endpoints and the protected CRUD
// groups behind the request authenticator.
func RegisterRoutes(app *fiber.App, deps Deps, logger auth.Logger) {
	authController := NewAuthController(deps.Auther, logger)

	api := app.Group("/api")

	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)

	// The authenticator runs on every request under /api: anonymous requests
	// pass through with an empty security context, bad tokens short-circuit.
	errorHandler := ErrorHandler(logger)
	authenticate := jwtware.New(jwtware.Config{
		TokenValidator:  deps.TokenService,
		PrincipalLoader: deps.PrincipalLoader,
		ErrorHandler:    errorHandler,
		ContextKey:      deps.Config.GetContextKey(),
		TokenLookup:     deps.Config.GetTokenLookup(),
		AuthScheme:      deps.Config.GetAuthScheme(),
		Logger:          logger,
	})
	requireAuth := jwtware.RequireAuthenticated(errorHandler)

	taskGroup := api.Group("/tasks", authenticate, requireAuth)
	tasks.NewController(deps.Tasks).RegisterRoutes(taskGroup)

	departmentGroup := api.Group("/departments", authenticate, requireAuth)
	departments.NewController(deps.Departments).RegisterRoutes(departmentGroup)
}
