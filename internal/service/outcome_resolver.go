package service

import (
	"fmt"

	"github.com/dom/battle-service/internal/domain"
	"github.com/dom/battle-service/internal/random"
)

// OutcomeResolver picks a battle winner with probability proportional to power.
type OutcomeResolver struct {
	rng random.Source
}

func NewOutcomeResolver(rng random.Source) *OutcomeResolver {
	if rng == nil {
		rng = random.Default()
	}
	return &OutcomeResolver{rng: rng}
}

// Resolve returns the winning participant. When both powers are zero each side
// wins half the time; otherwise p1 wins with probability p1.Power/total, so a
// zero-power participant never beats a non-zero one.
func (r *OutcomeResolver) Resolve(p1, p2 domain.Participant) (domain.Participant, error) {
	for _, p := range []domain.Participant{p1, p2} {
		if !p.PowerInRange() {
			return domain.Participant{}, fmt.Errorf("participant %q with power %d: %w", p.Name, p.Power, domain.ErrInvalidPower)
		}
	}

	total := p1.Power + p2.Power
	if total == 0 {
		if r.rng.Float64() < 0.5 {
			return p1, nil
		}
		return p2, nil
	}

	probability1 := float64(p1.Power) / float64(total)
	if r.rng.Float64() < probability1 {
		return p1, nil
	}
	return p2, nil
}
