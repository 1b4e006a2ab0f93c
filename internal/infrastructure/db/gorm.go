package db

import (
	"context"
	"fmt"
	"time"

	"claims-backoffice/internal/config"
	"claims-backoffice/internal/domain/cases"
	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/financial"
	"claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/internal/domain/partner"
	"claims-backoffice/internal/domain/provider"
	"claims-backoffice/internal/domain/user"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.MySQLDSN()), nil
	case "postgres":
		return postgres.Open(cfg.PostgresDSN), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}
	return openGorm(dial, level)
}

// OpenGormWithDialector is OpenGorm for a prebuilt dialector (tests, tooling).
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	return openGorm(dial, logger.Warn)
}

func openGorm(dial gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logrus.WithField("dialect", dial.Name()).Info("gorm: connected")
	return db, nil
}

// Models lists every persisted table.
func Models() []any {
	return []any{
		&user.User{},
		&partner.Partner{},
		&provider.ServiceProvider{},
		&cases.Case{},
		&cases.Sequence{},
		&claim.Claim{},
		&financial.Step{},
		&financial.BankAccount{},
		&financial.BankStatement{},
		&financial.CreditCard{},
		&financial.CardStatement{},
		&financial.Loan{},
		&financial.Mortgage{},
		&financial.HirePurchaseAgreement{},
		&offboarding.Step{},
		&offboarding.Document{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// HealthCheck pings the pool behind db.
func HealthCheck(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
