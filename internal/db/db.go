package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barbershop-manager/internal/config"
	"github.com/BruksfildServices01/barbershop-manager/internal/logger"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if !cfg.IsProduction() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.NewGormLogger(log, level, cfg.DB.SlowQuery),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DB.ConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := db.Exec(`
        UPDATE barbershops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.App.DefaultTimezone).Error; err != nil {
		return nil, fmt.Errorf("backfill timezone: %w", err)
	}

	return db, nil
}

// indexes que o AutoMigrate não expressa (únicos parciais).
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_inventory_shop_barcode
        ON inventory (shop_id, barcode)
        WHERE barcode <> ''`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_slot
        ON appointments (shop_id, barber_id, date, time)
        WHERE status IN ('pending', 'confirmed')`,
}

// Migrate também é usado pelos testes com sqlite em memória.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Credential{},
		&models.Service{},
		&models.HaircutRecord{},
		&models.Product{},
		&models.SaleRecord{},
		&models.Expense{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
