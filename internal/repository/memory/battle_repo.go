// Package memory keeps battles in process memory for the lifetime of the server.
package memory

import (
	"context"
	"sync"

	"github.com/dom/battle-service/internal/domain"
	"github.com/dom/battle-service/internal/repository"
)

type battleRepository struct {
	mu      sync.RWMutex
	battles map[string]domain.Battle
}

func NewBattleRepository() *battleRepository {
	return &battleRepository{battles: make(map[string]domain.Battle)}
}

func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Battle: NewBattleRepository(),
	}
}

func (r *battleRepository) Create(ctx context.Context, battle *domain.Battle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ID]; exists {
		return domain.ErrBattleExists
	}
	r.battles[battle.ID] = *battle
	return nil
}

func (r *battleRepository) GetByID(ctx context.Context, id string) (*domain.Battle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	battle, ok := r.battles[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrBattleNotFound
	}
	// callers get a copy; stored records are never mutated
	return &battle, nil
}

func (r *battleRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.battles)), nil
}
