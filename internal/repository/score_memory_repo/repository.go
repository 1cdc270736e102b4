package score_memory_repo

import (
	"context"
	"square_bet/internal/repository"
	"sync"
)

// Хранилище в памяти, живёт до конца процесса
type repo struct {
	mtx    sync.RWMutex
	values map[string]string
}

func NewScoreRepository() repository.ScoreRepository {
	return &repo{
		values: make(map[string]string),
	}
}

func (r *repo) Get(_ context.Context, key string) (string, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	v, ok := r.values[key]
	return v, ok, nil
}

func (r *repo) Set(_ context.Context, key, value string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.values[key] = value
	return nil
}
