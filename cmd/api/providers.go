package main

import (
	"thirupugazh_pos/internal/adapter/persistence/repository"
	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/config"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/infrastructure/authz"
	"thirupugazh_pos/internal/infrastructure/cache"
	"thirupugazh_pos/internal/infrastructure/logger"
	"thirupugazh_pos/internal/infrastructure/metrics"
	"thirupugazh_pos/internal/infrastructure/payments"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newViper() (*viper.Viper, error) {
	return config.New()
}

func loadConfig(v *viper.Viper) (config.Config, error) {
	return config.Load(v)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env)), nil
}

func newFxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}

func newCalendar(cfg config.Config) (entities.DayWindowCalendar, error) {
	return cfg.DayWindowCalendar()
}

func newClock() clock.Clock {
	return clock.Real{}
}

func newSnowflakeNode(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.Snowflake.Node)
}

func newPaymentPolicy(v *viper.Viper, log *zap.Logger) (interfaces.IPaymentPolicyProvider, error) {
	return config.NewPaymentPolicyHolder(v, log)
}

// newRolePolicy keeps the casbin policy in the SQL store when one is configured.
func newRolePolicy(db *gorm.DB, log *zap.Logger) (interfaces.IRolePolicy, error) {
	enforcer, err := authz.NewEnforcer(db)
	if err != nil {
		return nil, err
	}
	return authz.NewRolePolicy(enforcer, log), nil
}

func newMenuCatalog(cfg config.Config, log *zap.Logger) (interfaces.IMenuCatalog, error) {
	items, err := cfg.MenuItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		log.Info("no menu configured, using the default tickets")
		items = repository.DefaultMenu()
	}
	return repository.NewStaticMenuCatalog(items), nil
}

func newReportCache(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) interfaces.IReportCache {
	client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if client == nil {
		log.Info("redis not configured, report cache disabled")
		return nil
	}
	lc.Append(fx.StopHook(client.Close))
	return cache.NewRedisReportCache(client, cfg.Redis.TTL)
}

func newPaymentVerifier(cfg config.Config, policy interfaces.IPaymentPolicyProvider, log *zap.Logger) (interfaces.IPaymentVerifier, error) {
	if cfg.MercadoPago.AccessToken == "" && !cfg.MercadoPago.Mock {
		if len(policy.PaymentPolicy().VerifyModes) > 0 {
			log.Warn("payment verification configured without a mercadopago access token, verified modes will be rejected")
		}
		return nil, nil
	}
	return payments.NewMercadoPagoVerifier(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, log)
}

func newBillingMetrics() *metrics.BillingMetrics {
	return metrics.NewBillingMetrics(nil)
}

func newMetricsSink(m *metrics.BillingMetrics) interfaces.IBillingMetrics {
	return m
}

func newCartUseCase(st storage, catalog interfaces.IMenuCatalog, clk clock.Clock, log *zap.Logger) usecase.ICartUseCase {
	return usecase.NewCartUseCase(st.Bills, catalog, clk, log)
}

func newHoldUseCase(
	cfg config.Config,
	st storage,
	policy interfaces.IRolePolicy,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	m interfaces.IBillingMetrics,
	log *zap.Logger,
) usecase.IHoldUseCase {
	return usecase.NewHoldUseCase(st.Bills, st.Holds, policy, calendar, clk, m, log).WithPageSize(cfg.Holds.PageSize)
}

func newResumeUseCase(
	st storage,
	policy interfaces.IRolePolicy,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	ids *snowflake.Node,
	m interfaces.IBillingMetrics,
	log *zap.Logger,
) usecase.IResumeUseCase {
	return usecase.NewResumeUseCase(st.Holds, st.Audit, policy, calendar, clk, ids, m, log)
}

func newPaymentUseCase(
	st storage,
	verifier interfaces.IPaymentVerifier,
	policy interfaces.IPaymentPolicyProvider,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	m interfaces.IBillingMetrics,
	log *zap.Logger,
) usecase.IPaymentUseCase {
	return usecase.NewPaymentUseCase(st.Bills, st.Ledger, verifier, policy, calendar, clk, m, log)
}

func newReportUseCase(
	st storage,
	policy interfaces.IRolePolicy,
	reports interfaces.IReportCache,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	log *zap.Logger,
) usecase.IReportUseCase {
	return usecase.NewReportUseCase(st.Ledger, policy, reports, calendar, clk, log)
}
