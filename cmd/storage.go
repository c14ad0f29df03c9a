package cmd

import (
	"fmt"
	"log/slog"

	"dispatch/internal/adapters/out/memory"
	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenStorage connects the configured storage driver and returns its unit of
// work factory together with a function releasing the connection.
func OpenStorage(configs Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	switch configs.StorageDriver {
	case StorageMemory:
		logger.Info("Using in-memory storage")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), func() error { return nil }, nil

	case StoragePostgres:
		db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err = db.AutoMigrate(postgres_adapter.Models()...); err != nil {
			return nil, nil, fmt.Errorf("migrate schema: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Using postgres storage", "host", configs.DBHost, "db", configs.DBName)
		return postgres_adapter.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", configs.StorageDriver)
	}
}
