package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database wraps the single live database handle for the process.
// It is constructed once in main and passed to every component that
// persists data; there is no package-level instance.
type Database struct {
	db *gorm.DB
}

// ConnectDatabase opens the database described by the configuration.
// A DATABASE_URL selects PostgreSQL; otherwise the embedded SQLite
// store at DB_PATH is used.
func ConnectDatabase(cfg *Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return &Database{db: db}, nil
}

// NewDatabase wraps an already-open gorm handle. Used by tests that run
// against an in-memory SQLite instance.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// DB returns the underlying gorm handle
func (d *Database) DB() *gorm.DB {
	return d.db
}

// AutoMigrate creates the given tables if they do not exist yet.
// Migration is idempotent; running it on every startup is safe.
func (d *Database) AutoMigrate(models ...interface{}) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// ExecuteQuery runs a raw parameterized query. Queries that lexically
// begin with a read-only keyword (SELECT, PRAGMA) return the full result
// set in row order; any other query runs inside its own transaction and
// returns no rows. A store-level failure rolls the transaction back and
// is returned to the caller unretried.
func (d *Database) ExecuteQuery(query string, params ...interface{}) ([]map[string]interface{}, error) {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "PRAGMA") {
		var rows []map[string]interface{}
		if err := d.db.Raw(query, params...).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("query failed: %w", err)
		}
		return rows, nil
	}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(query, params...).Error
	})
	if err != nil {
		return nil, fmt.Errorf("statement failed: %w", err)
	}
	return nil, nil
}

// Close releases the underlying connection. Called once at shutdown by
// the owner of the Database.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
