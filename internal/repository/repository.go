package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrWordNotFound = errors.New("word not found")

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// DBI is a QueryI that can also run a unit of work in one transaction.
type DBI interface {
	QueryI
	InTx(ctx context.Context, fn func(tx QueryI) error) error
}

// TxDB adapts *sqlx.DB to DBI.
type TxDB struct {
	*sqlx.DB
}

// InTx commits when fn returns nil and rolls back on every other path,
// including a panic inside fn.
func (d TxDB) InTx(ctx context.Context, fn func(tx QueryI) error) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed commit tx: %w", err)
	}

	return nil
}

type Repository struct {
	*WordsR
	*StatsR
}

func NewRepository(db DBI) Repository {
	return Repository{
		WordsR: NewWordsRepository(db),
		StatsR: NewStatsRepository(db),
	}
}
