package database

import (
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"charity_backend/internals/configs"
	donationModel "charity_backend/internals/features/charity/donations/model"
	projectModel "charity_backend/internals/features/charity/projects/model"
)

// Open connects to the configured database and tunes the pool.
func Open(cfg configs.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case configs.DriverPostgres:
		log.Println("🔌 Connecting to PostgreSQL...")
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling
		})
	case configs.DriverSQLite:
		log.Printf("🔌 Opening SQLite at %s...", cfg.SQLitePath)
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: configs.NewGormLogger(cfg.DBLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if err := TunePool(db, cfg); err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// SQLiteDSN enables foreign keys (needed for ON DELETE CASCADE) and a busy timeout.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func TunePool(db *gorm.DB, cfg configs.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	if cfg.DBDriver == configs.DriverSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
		return nil
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// Migrate creates or updates the charity_projects and donations tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&projectModel.CharityProject{}, &donationModel.Donation{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping is used by the health check.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
