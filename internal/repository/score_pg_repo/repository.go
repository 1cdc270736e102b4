package score_pg_repo

import (
	"context"
	"errors"
	"fmt"
	"square_bet/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "scores"
	colKey   = "score_key"
	colValue = "score_value"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colKey + ` TEXT PRIMARY KEY,
	` + colValue + ` TEXT NOT NULL
)`

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewScoreRepository(dbc *pgxpool.Pool) repository.ScoreRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Migrate - создает таблицу значений, если её нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create %s table: %w", table, err)
	}
	return nil
}

// Get - получение значения по ключу.
// Внутри транзакции trm запрос уходит в неё
func (r *repo) Get(ctx context.Context, key string) (string, bool, error) {
	sqlStr, args, err := getQuery(key).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get score %q: %w", key, err)
	}

	return value, true, nil
}

// Set - сохраняет значение, перезаписывая существующее
func (r *repo) Set(ctx context.Context, key, value string) error {
	sqlStr, args, err := setQuery(key, value).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("set score %q: %w", key, err)
	}

	return nil
}

func getQuery(key string) sq.SelectBuilder {
	return sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)
}

// setQuery Upsert по ключу
func setQuery(key, value string) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colKey, colValue).
		Values(key, value).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " + colValue + " = EXCLUDED." + colValue).
		PlaceholderFormat(sq.Dollar)
}
