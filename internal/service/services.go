package service

import (
	"github.com/dom/battle-service/internal/random"
	"github.com/dom/battle-service/internal/repository"
)

type Services struct {
	Battle   *BattleService
	Resolver *OutcomeResolver
}

func NewServices(repos *repository.Repositories, rng random.Source, publisher BattlePublisher) *Services {
	resolver := NewOutcomeResolver(rng)

	var opts []BattleServiceOption
	if publisher != nil {
		opts = append(opts, WithPublisher(publisher))
	}

	return &Services{
		Battle:   NewBattleService(repos.Battle, resolver, opts...),
		Resolver: resolver,
	}
}
