// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-guard/backend/config"
	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/application/usecase/budget"
	"github.com/budget-guard/backend/internal/infra/server/router"
	"github.com/budget-guard/backend/internal/integration/entrypoint/controller"
	"github.com/budget-guard/backend/internal/integration/notifier"
	"github.com/budget-guard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealth, redisHealth func() bool) *Injector {
	// Collaborators
	kvStore := persistence.NewRedisStore(redisClient)
	ledger := persistence.NewTransactionRepository(db)
	clock := adapter.SystemClock{}

	var dispatcher adapter.NotificationDispatcher
	if cfg.Alert.ResendAPIKey != "" && cfg.Alert.ToEmail != "" {
		dispatcher = notifier.NewResendDispatcher(
			cfg.Alert.ResendAPIKey,
			cfg.Alert.FromName,
			cfg.Alert.FromEmail,
			cfg.Alert.ToEmail,
		)
	} else {
		dispatcher = notifier.NewLogDispatcher()
	}

	// Core components
	periods := budget.NewPeriodCalculator(kvStore, clock)
	aggregator := budget.NewSpendAggregator(ledger)
	limits := budget.NewLimitStore(kvStore, periods)
	thresholds := budget.NewThresholdNotifier(kvStore, dispatcher)
	completions := budget.NewCompletionRecorder(kvStore, clock)

	evaluateUseCase := budget.NewEvaluateBudgetUseCase(periods, aggregator, limits, thresholds, completions)

	// Controllers
	healthController := controller.NewHealthController(dbHealth, redisHealth)
	budgetController := controller.NewBudgetController(evaluateUseCase, periods, limits, completions)

	return &Injector{
		Config: cfg,
		Router: router.NewRouter(healthController, budgetController),
	}
}
