package repository

import (
	"context"

	"github.com/dom/battle-service/internal/domain"
)

// BattleRepository stores resolved battles. Create must fail with
// domain.ErrBattleExists instead of overwriting, and GetByID must return
// domain.ErrBattleNotFound for unknown ids.
type BattleRepository interface {
	Create(ctx context.Context, battle *domain.Battle) error
	GetByID(ctx context.Context, id string) (*domain.Battle, error)
	Count(ctx context.Context) (int64, error)
}

type Repositories struct {
	Battle BattleRepository
}
