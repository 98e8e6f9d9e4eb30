package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/vocabquiz/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var migrations embed.FS

func init() {
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// InitDB opens the pool, checks the store is reachable and brings the schema up
// to date. Any failure here is a startup failure.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := migrateUp(db, cfg.Driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrateUp(db *sqlx.DB, driver string) error {
	src, err := iofs.New(migrations, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed load migrations: %w", err)
	}

	var target database.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case config.DriverSQLite:
		target, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("failed init migrations: %w", err)
	}

	// m.Close would also close the shared pool, so only the source is released.
	defer src.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed apply migrations: %w", err)
	}

	return nil
}
