package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gm-socius/review-restaurants/models"
)

// Options tune how the store talks to its backend.
type Options struct {
	// EchoSQL logs every statement GORM executes.
	EchoSQL bool
}

// Store is the persistence handle for restaurants and reviews. It is
// created once by the caller and passed explicitly to whoever needs it.
type Store struct {
	db *gorm.DB
}

// Open connects to the backend named by dsn. A postgres:// URL or a
// key/value string containing host= selects PostgreSQL; anything else is
// treated as a SQLite path (":memory:" included).
//
// SQLite connections are limited to a single open connection with foreign
// key enforcement switched on, so referential errors and cascades behave
// the same as on PostgreSQL.
func Open(dsn string, opts Options) (*Store, error) {
	dialector, isSQLite := dialectorFor(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(opts.EchoSQL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSQLite {
		if err := configureSQLite(db); err != nil {
			closeDB(db)
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// CreateSchema creates the restaurant and review tables if they don't exist.
// It is idempotent and meant to run once at process start.
func (s *Store) CreateSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Restaurant{}, &models.Review{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return closeDB(s.db)
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return postgres.Open(dsn), false
	}
	return sqlite.Open(sqliteDSN(dsn)), true
}

// sqliteDSN adds connection parameters to a SQLite path so that every
// connection the pool opens enforces foreign keys and waits on locks.
func sqliteDSN(dsn string) string {
	params := []string{"_foreign_keys=on", "_busy_timeout=5000"}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, param := range params {
		key := param[:strings.Index(param, "=")+1]
		if strings.Contains(dsn, key) {
			continue
		}
		dsn += sep + param
		sep = "&"
	}
	return dsn
}

func configureSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}

	// ":memory:" databases live and die with their connection, so keep
	// exactly one.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	var foreignKeys int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error; err != nil {
		return fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if foreignKeys != 1 {
		return errors.New("foreign key enforcement is off")
	}
	return nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	return sqlDB.Close()
}

func newLogger(echo bool) logger.Interface {
	level := logger.Warn
	if echo {
		level = logger.Info
	}

	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
