package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dom/battle-service/internal/domain"
	"github.com/dom/battle-service/internal/repository"
	"github.com/google/uuid"
)

const maxIDAttempts = 3

// BattlePublisher is notified of every stored battle.
type BattlePublisher interface {
	PublishBattle(battle *domain.Battle)
}

type BattleService struct {
	battleRepo repository.BattleRepository
	resolver   *OutcomeResolver
	publisher  BattlePublisher
	newID      func() (uuid.UUID, error)
	now        func() time.Time
}

type BattleServiceOption func(*BattleService)

func WithPublisher(p BattlePublisher) BattleServiceOption {
	return func(s *BattleService) { s.publisher = p }
}

func WithIDGenerator(gen func() (uuid.UUID, error)) BattleServiceOption {
	return func(s *BattleService) { s.newID = gen }
}

func WithClock(now func() time.Time) BattleServiceOption {
	return func(s *BattleService) { s.now = now }
}

func NewBattleService(battleRepo repository.BattleRepository, resolver *OutcomeResolver, opts ...BattleServiceOption) *BattleService {
	s := &BattleService{
		battleRepo: battleRepo,
		resolver:   resolver,
		newID:      uuid.NewRandom,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBattle resolves a battle between p1 and p2, stores it and returns its id.
func (s *BattleService) CreateBattle(ctx context.Context, p1, p2 domain.Participant) (string, error) {
	winner, err := s.resolver.Resolve(p1, p2)
	if err != nil {
		return "", err
	}

	battle := &domain.Battle{
		Participant1: p1,
		Participant2: p2,
		Winner:       winner.Name,
		WinnerPower:  winner.Power,
		CreatedAt:    s.now().UTC(),
		Completed:    true,
	}

	for attempt := 1; ; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate battle id: %w", err)
		}
		battle.ID = id.String()

		err = s.battleRepo.Create(ctx, battle)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrBattleExists) && attempt < maxIDAttempts {
			continue
		}
		return "", fmt.Errorf("failed to store battle: %w", err)
	}

	if s.publisher != nil {
		s.publisher.PublishBattle(battle)
	}

	return battle.ID, nil
}

func (s *BattleService) GetBattle(ctx context.Context, id string) (*domain.Battle, error) {
	return s.battleRepo.GetByID(ctx, id)
}

func (s *BattleService) CountBattles(ctx context.Context) (int64, error) {
	return s.battleRepo.Count(ctx)
}
