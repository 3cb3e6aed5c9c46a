package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dom/battle-service/internal/domain"
	"github.com/dom/battle-service/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBattle(id string) *domain.Battle {
	return &domain.Battle{
		ID:           id,
		Participant1: domain.Participant{Name: "Warrior1", Power: 50},
		Participant2: domain.Participant{Name: "Warrior2", Power: 30},
		Winner:       "Warrior1",
		WinnerPower:  50,
		CreatedAt:    time.Now().UTC(),
		Completed:    true,
	}
}

func TestBattleRepository_CreateAndGet(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx := context.Background()

	battle := newBattle("battle-1")
	require.NoError(t, repo.Create(ctx, battle))

	got, err := repo.GetByID(ctx, "battle-1")
	require.NoError(t, err)
	assert.Equal(t, *battle, *got)
}

func TestBattleRepository_GetReturnsCopy(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBattle("battle-1")))

	got, err := repo.GetByID(ctx, "battle-1")
	require.NoError(t, err)
	got.Winner = "tampered"

	again, err := repo.GetByID(ctx, "battle-1")
	require.NoError(t, err)
	assert.Equal(t, "Warrior1", again.Winner)
}

func TestBattleRepository_GetNotFound(t *testing.T) {
	repo := memory.NewBattleRepository()

	got, err := repo.GetByID(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, domain.ErrBattleNotFound)
	assert.Nil(t, got)
}

func TestBattleRepository_CreateDuplicate(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBattle("battle-1")))

	dup := newBattle("battle-1")
	dup.Winner = "Warrior2"
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrBattleExists)

	got, err := repo.GetByID(ctx, "battle-1")
	require.NoError(t, err)
	assert.Equal(t, "Warrior1", got.Winner, "existing record must not be overwritten")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBattleRepository_Count(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newBattle(fmt.Sprintf("battle-%d", i))))
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBattleRepository_ConcurrentCreate(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx := context.Background()

	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("battle-%d-%d", w, i)
				if err := repo.Create(ctx, newBattle(id)); err != nil {
					t.Errorf("create %s: %v", id, err)
					return
				}
				// read-your-writes
				if _, err := repo.GetByID(ctx, id); err != nil {
					t.Errorf("get %s: %v", id, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), count)
}

func TestBattleRepository_CanceledContext(t *testing.T) {
	repo := memory.NewBattleRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Create(ctx, newBattle("battle-1")), context.Canceled)
	_, err := repo.GetByID(ctx, "battle-1")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
