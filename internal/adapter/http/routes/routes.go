package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "thirupugazh_pos/docs"
	"thirupugazh_pos/internal/adapter/http/handlers"
	"thirupugazh_pos/internal/config"
	"thirupugazh_pos/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	fx.In

	Cart    *handlers.CartHandler
	Hold    *handlers.HoldHandler
	Resume  *handlers.ResumeHandler
	Payment *handlers.PaymentHandler
	Report  *handlers.ReportHandler
}

// NewEngine builds the gin engine with every route registered.
func NewEngine(h Handlers, m *metrics.BillingMetrics, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m, log.Named("http"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	v1.Use(handlers.RoleMiddleware())
	addPingRoutes(v1)
	addMenuRoutes(v1, h.Cart)
	addBillRoutes(v1, h.Cart, h.Hold, h.Payment)
	addHoldRoutes(v1, h.Hold, h.Resume)
	addTransactionRoutes(v1, h.Payment)
	addReportRoutes(v1, h.Report)
	return router
}

// Run serves the engine for the lifetime of the fx application.
func Run(lc fx.Lifecycle, cfg config.Config, router *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func setMiddlewares(router *gin.Engine, m *metrics.BillingMetrics, log *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestLogger(log))
	if m != nil {
		router.Use(m.GinMiddleware())
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("role", c.GetHeader(handlers.HeaderRole)),
		)
	}
}
