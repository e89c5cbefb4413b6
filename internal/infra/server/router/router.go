// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-guard/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	budgetController *controller.BudgetController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	budgetController *controller.BudgetController,
) *Router {
	return &Router{
		healthController: healthController,
		budgetController: budgetController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	api := r.engine.Group("/api/v1")
	{
		account := api.Group("/accounts/:accountId")
		{
			account.GET("/budget/summary", r.budgetController.Summary)
			account.GET("/budget/limit", r.budgetController.GetLimit)
			account.PUT("/budget/limit", r.budgetController.SetLimit)
			account.DELETE("/budget/limit", r.budgetController.ClearLimit)
			account.PUT("/budget/window", r.budgetController.SetWindow)
			account.POST("/budget/window/shift", r.budgetController.ShiftWindow)
			account.GET("/medals", r.budgetController.Medals)
		}
	}

	return r.engine
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
