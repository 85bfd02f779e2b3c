package infra

import (
	"fmt"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Map driver duplicate-key and not-found errors onto
		// gorm.ErrDuplicatedKey / gorm.ErrRecordNotFound.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the full schema. Also used by integration
// tests against a disposable database.
func RunMigrations(db *gorm.DB) error {
	if err := applyPreMigrationPatches(db); err != nil {
		return fmt.Errorf("pre-migration patches: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Client{},
		&model.User{},
		&model.Workplace{},
		&model.EmployeeWorkplace{},
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductOrder{},
		&model.ProductOrderItem{},
		&model.ClientProductOrder{},
		&model.WorkShift{},
		&model.EmployeeSchedule{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applyPreMigrationPatches runs DDL that must exist before AutoMigrate:
// uuid primary keys default to gen_random_uuid(), which requires pgcrypto
// on PostgreSQL < 13.
func applyPreMigrationPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"ensure pgcrypto for gen_random_uuid",
			`CREATE EXTENSION IF NOT EXISTS pgcrypto`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("pre-patch %q: %w", p.descr, err)
		}
	}
	return nil
}

// applySchemaPatches runs idempotent DDL statements that GORM AutoMigrate cannot
// fully handle on its own. Each statement uses IF NOT EXISTS / DO NOTHING
// semantics so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Covering index for the client order history query (orderDate DESC).
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_orders_order_date') THEN
		    CREATE INDEX idx_orders_order_date ON product_orders (order_date DESC);
		  END IF;
		END $$`,
		// Item lookups during order reads and replacements are always by order.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_order_items_order') THEN
		    CREATE INDEX idx_order_items_order ON product_order_items (order_id);
		  END IF;
		END $$`,
		// Case-insensitive login by client email.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_clients_email_lower') THEN
		    CREATE INDEX idx_clients_email_lower ON clients (LOWER(email));
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
