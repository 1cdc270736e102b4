package repository

import (
	"context"
)

// ScoreRepository Хранилище скалярных значений по строковому ключу.
// Используется для рекорда за всё время
type ScoreRepository interface {
	// Get возвращает found=false, если ключа нет
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
