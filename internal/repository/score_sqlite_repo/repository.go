package score_sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"square_bet/internal/repository"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"

	table    = "scores"
	colKey   = "score_key"
	colValue = "score_value"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colKey + ` TEXT PRIMARY KEY,
	` + colValue + ` TEXT NOT NULL
)`

type repo struct {
	db *sql.DB
}

// Open - открывает файл базы и создает таблицу значений
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// Одна сессия, один писатель
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create %s table: %w", table, err)
	}
	return db, nil
}

func NewScoreRepository(db *sql.DB) repository.ScoreRepository {
	return &repo{
		db: db,
	}
}

// Get - получение значения по ключу
func (r *repo) Get(ctx context.Context, key string) (string, bool, error) {
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get score %q: %w", key, err)
	}

	return value, true, nil
}

// Set - сохраняет значение, перезаписывая существующее
func (r *repo) Set(ctx context.Context, key, value string) error {
	query := sq.Insert(table).
		Columns(colKey, colValue).
		Values(key, value).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = excluded." + colValue)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("set score %q: %w", key, err)
	}

	return nil
}
