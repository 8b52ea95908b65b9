package postgres

import (
	"context"
	"fmt"

	"orderdesk/internal/adapters/out/postgres/batchrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/order"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a libpq connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects to PostgreSQL with GORM's own logging silenced; the application logs at its boundaries.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the orders and batch_orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &batchrepo.BatchOrderDTO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedOrders stores orders that are missing from the orders table and reports how many were inserted.
func SeedOrders(ctx context.Context, db *gorm.DB, orders []*order.Order) (int64, error) {
	n, err := orderrepo.NewGormOrderRepository(db).Seed(ctx, orders...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed orders: %w", err)
	}
	return n, nil
}
