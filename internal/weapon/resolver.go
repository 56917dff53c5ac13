// Package weapon resolves equipped-weapon effects against sliced monsters.
package weapon

import (
	"math/rand"

	"github.com/samdwyer/monsterslayer/internal/event"
	"github.com/samdwyer/monsterslayer/internal/gamedata"
)

// Target is a monster a slice landed on. Single-target effects call it
// directly; multi-target effects (chain, spread) go out over the event
// bus instead, because the resolver has no view of the rest of the horde.
type Target interface {
	// Identity
	MonsterID() string
	MonsterType() string

	// Mutations
	ApplyDamage(amount int) int // Returns actual damage dealt
	ApplyDamageOverTime(tickDamage int, duration float64)
	ApplySlow(factor float64, duration float64)
	ApplyStun(duration float64)
	ApplyFreeze(duration float64)
	Reveal(duration float64)
}

// ApplyResult summarizes what a slice did, for the HUD and telemetry.
type ApplyResult struct {
	Applied    int // effects that actually landed
	Damage     int // total direct damage dealt to the target
	Broadcasts int // chain/spread events published
}

// Resolver applies a weapon tier's static effect list to targets.
type Resolver struct {
	weapons *gamedata.WeaponRegistry
	bus     *event.Bus
}

// NewResolver creates a resolver over the weapon registry and event bus.
func NewResolver(weapons *gamedata.WeaponRegistry, bus *event.Bus) *Resolver {
	return &Resolver{
		weapons: weapons,
		bus:     bus,
	}
}

// Apply resolves the given weapon tier's effects against the target, in
// list order. An unknown weapon id or out-of-range tier is a no-op.
// Unknown effect kinds are silently skipped, so older builds tolerate
// newer content. rng drives stochastic effects; when nil they are skipped.
func (r *Resolver) Apply(weaponID string, tier int, target Target, rng *rand.Rand) ApplyResult {
	var result ApplyResult

	def := r.weapons.GetByID(weaponID)
	if def == nil {
		return result
	}
	t := def.Tier(tier)
	if t == nil {
		return result
	}

	for _, e := range t.Effects {
		switch e.Kind {
		case gamedata.EffectBonusDamage:
			// A targetType restriction only lands on matching monsters.
			if e.TargetType != "" && e.TargetType != target.MonsterType() {
				continue
			}
			result.Damage += target.ApplyDamage(e.Amount)
			result.Applied++

		case gamedata.EffectDamageOverTime:
			target.ApplyDamageOverTime(e.TickDamage, e.Duration)
			result.Applied++

		case gamedata.EffectSlow:
			target.ApplySlow(e.Factor, e.Duration)
			result.Applied++

		case gamedata.EffectStun:
			target.ApplyStun(e.Duration)
			result.Applied++

		case gamedata.EffectFreezeChance:
			if rng == nil || rng.Float64() >= e.Chance {
				continue
			}
			target.ApplyFreeze(e.Duration)
			result.Applied++

		case gamedata.EffectChainDamage:
			r.bus.Publish(event.Event{
				Type: event.ChainDamage,
				Data: event.ChainDamagePayload{
					OriginID: target.MonsterID(),
					Damage:   e.Amount,
					Jumps:    e.Jumps,
				},
			})
			result.Applied++
			result.Broadcasts++

		case gamedata.EffectSpreadDamage:
			r.bus.Publish(event.Event{
				Type: event.SpreadDamage,
				Data: event.SpreadDamagePayload{
					OriginID: target.MonsterID(),
					Damage:   e.Amount,
					Radius:   e.Radius,
				},
			})
			result.Applied++
			result.Broadcasts++

		case gamedata.EffectReveal:
			target.Reveal(e.Duration)
			result.Applied++
		}
	}

	return result
}
