package database

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewDB opens the configured database (PostgreSQL or SQLite) using GORM
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	if cfg.Database.Driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY on concurrent inserts
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test connection, the database container may still be starting
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.Database.ConnectRetries)
	err = backoff.RetryNotify(sqlDB.Ping, policy, func(err error, next time.Duration) {
		log.Printf("⚠️ Database ping failed, retrying in %s: %v", next, err)
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✅ Database connected successfully (%s)", cfg.Database.Driver)

	return db, nil
}

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

func dialect(driver string) string {
	if driver == config.DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// Migrate applies all pending migrations and returns how many ran
func Migrate(db *gorm.DB, driver string) (int, error) {
	return exec(db, driver, migrate.Up)
}

// Rollback reverts every applied migration
func Rollback(db *gorm.DB, driver string) (int, error) {
	return exec(db, driver, migrate.Down)
}

func exec(db *gorm.DB, driver string, dir migrate.MigrationDirection) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, dialect(driver), migrationSource(), dir)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
