package main

import (
	"context"
	"fmt"
	"time"

	"thirupugazh_pos/internal/adapter/persistence/repository"
	"thirupugazh_pos/internal/config"
	"thirupugazh_pos/internal/infrastructure/database"
	"thirupugazh_pos/internal/usecase/interfaces"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// storage groups the repositories of the selected backend. DB is set only for SQL drivers.
type storage struct {
	Bills  interfaces.IBillRepository
	Holds  interfaces.IHoldRepository
	Ledger interfaces.IPaymentTransactionRepository
	Audit  interfaces.IResumeAuditRepository
	DB     *gorm.DB
}

func newStorage(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (storage, error) {
	log = log.Named("storage")

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		return storage{Bills: store, Holds: store, Ledger: store, Audit: store}, nil

	case config.DriverDynamoDB:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return storage{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		if err := database.EnsureDynamoTables(ctx, ddb, cfg.DynamoDB, log); err != nil {
			return storage{}, err
		}
		tables := repository.DynamoTablesFromConfig(cfg.DynamoDB)
		return storage{
			Bills:  repository.NewBillDynamoRepository(ddb, tables),
			Holds:  repository.NewHoldDynamoRepository(ddb, tables),
			Ledger: repository.NewPaymentTransactionDynamoRepository(ddb, tables),
			Audit:  repository.NewResumeEventDynamoRepository(ddb, tables),
		}, nil

	case config.DriverPostgres, config.DriverMySQL, config.DriverSQLite:
		db, err := database.OpenGorm(cfg.Storage, log)
		if err != nil {
			return storage{}, err
		}
		store := repository.NewGormStore(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			return storage{}, fmt.Errorf("migrate: %w", err)
		}

		lc.Append(fx.StopHook(func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}))
		return storage{Bills: store, Holds: store, Ledger: store, Audit: store, DB: db}, nil

	default:
		return storage{}, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func newGormDB(st storage) *gorm.DB {
	return st.DB
}
