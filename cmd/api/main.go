package main

import (
	_ "thirupugazh_pos/docs"
	"thirupugazh_pos/internal/adapter/http/handlers"
	"thirupugazh_pos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

// @title           POS Billing Counter API
// @version         1.0
// @description     Cart, hold/resume with role override, payment finalization and daily reports.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Role
// @in header
// @name X-POS-Role
// @description staff or admin, set by the auth proxy.

func main() {
	fx.New(
		fx.Provide(
			newViper,
			loadConfig,
			newLogger,
			newCalendar,
			newClock,
			newSnowflakeNode,
			newPaymentPolicy,
			newStorage,
			newGormDB,
			newRolePolicy,
			newMenuCatalog,
			newReportCache,
			newPaymentVerifier,
			newBillingMetrics,
			newMetricsSink,
		),
		fx.Provide(
			newCartUseCase,
			newHoldUseCase,
			newResumeUseCase,
			newPaymentUseCase,
			newReportUseCase,
		),
		fx.Provide(
			handlers.NewCartHandler,
			handlers.NewHoldHandler,
			handlers.NewResumeHandler,
			handlers.NewPaymentHandler,
			handlers.NewReportHandler,
			routes.NewEngine,
		),
		fx.WithLogger(newFxLogger),
		fx.Invoke(routes.Run),
	).Run()
}
