// Package boss implements the shared boss phase state machine. Phase
// progression, health bookkeeping, invulnerability windows, and minion
// timers are identical for every boss; the five concrete bosses differ
// only in how they map a phase's attack-pattern tag to an attack.
package boss

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/monsterslayer/internal/event"
	"github.com/samdwyer/monsterslayer/internal/gamedata"
)

// InvulnerabilityWindow is granted on every phase transition so the
// player cannot burst through a threshold mid-combo.
const InvulnerabilityWindow = 1500 * time.Millisecond

// AttackPicker selects a concrete attack for the current phase. Pickers
// hold no health or phase state of their own.
type AttackPicker interface {
	// ID returns the boss id the picker belongs to.
	ID() string
	// Pick maps the phase's attack-pattern tag to an attack id.
	Pick(phase int, pattern string, rng *rand.Rand) string
}

// Boss is the runtime state of a boss fight, created on spawn and
// discarded on death.
type Boss struct {
	def    *gamedata.BossDef
	picker AttackPicker
	bus    *event.Bus
	rng    *rand.Rand

	Health     int
	MaxHealth  int
	PhaseIndex int
	Defeated   bool

	invulnerableUntil time.Time
	nextAttackAt      time.Time
	nextMinionAt      time.Time
}

// New creates a boss at full health in phase 0.
func New(def *gamedata.BossDef, picker AttackPicker, bus *event.Bus, rng *rand.Rand, now time.Time) (*Boss, error) {
	if def.PhaseCount() == 0 {
		return nil, fmt.Errorf("boss %s has no phases", def.ID)
	}
	b := &Boss{
		def:       def,
		picker:    picker,
		bus:       bus,
		rng:       rng,
		Health:    def.Health,
		MaxHealth: def.Health,
	}
	b.rollAttackTimer(now)
	b.rollMinionTimer(now)
	return b, nil
}

// ID returns the boss's definition id.
func (b *Boss) ID() string {
	return b.def.ID
}

// Phase returns the current phase definition.
func (b *Boss) Phase() *gamedata.BossPhaseDef {
	return b.def.Phase(b.PhaseIndex)
}

// HealthFraction returns current health as a fraction of maximum.
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth == 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// Invulnerable reports whether the boss is inside a phase-transition
// invulnerability window.
func (b *Boss) Invulnerable(now time.Time) bool {
	return now.Before(b.invulnerableUntil)
}

// TakeDamage applies damage and advances the phase machine. Damage while
// invulnerable or after defeat is ignored. A single hit advances at most
// one phase, however deep it cuts; the next hit re-evaluates. Crossing
// zero publishes BossDefeated with the soul reward and freezes the boss.
// Returns the damage actually applied.
func (b *Boss) TakeDamage(amount int, now time.Time) int {
	if amount <= 0 || b.Defeated || b.Invulnerable(now) {
		return 0
	}

	actual := amount
	if actual > b.Health {
		actual = b.Health
	}
	b.Health -= actual

	if b.Health == 0 {
		b.Defeated = true
		b.bus.Publish(event.Event{
			Type: event.BossDefeated,
			Data: event.BossDefeatedPayload{
				BossID:     b.def.ID,
				SoulReward: b.def.SoulReward,
			},
		})
		return actual
	}

	next := b.PhaseIndex + 1
	if next < b.def.PhaseCount() && b.HealthFraction() <= b.def.Phases[next].Threshold {
		b.enterPhase(next, now)
	}
	return actual
}

// enterPhase advances to the given phase: invulnerability window, fresh
// attack and minion timers, phase-change event.
func (b *Boss) enterPhase(index int, now time.Time) {
	b.PhaseIndex = index
	b.invulnerableUntil = now.Add(InvulnerabilityWindow)
	b.rollAttackTimer(now)
	b.rollMinionTimer(now)

	phase := b.def.Phase(index)
	b.bus.Publish(event.Event{
		Type: event.BossPhaseChanged,
		Data: event.BossPhasePayload{
			BossID:        b.def.ID,
			Phase:         index,
			AttackPattern: phase.AttackPattern,
		},
	})
}

// Update drives the boss's timers. Call it once per frame; it does
// nothing after defeat.
func (b *Boss) Update(now time.Time) {
	if b.Defeated {
		return
	}

	phase := b.Phase()

	if phase.MinionRate > 0 && !now.Before(b.nextMinionAt) {
		b.bus.Publish(event.Event{
			Type: event.BossMinionSpawn,
			Data: event.BossMinionSpawnPayload{
				BossID:     b.def.ID,
				MinionType: phase.MinionType,
			},
		})
		b.nextMinionAt = now.Add(secondsToDuration(phase.MinionRate))
	}

	if !now.Before(b.nextAttackAt) {
		attackID := b.picker.Pick(b.PhaseIndex, phase.AttackPattern, b.rng)
		b.bus.Publish(event.Event{
			Type: event.BossAttack,
			Data: event.BossAttackPayload{
				BossID:   b.def.ID,
				AttackID: attackID,
				Phase:    b.PhaseIndex,
			},
		})
		b.rollAttackTimer(now)
	}
}

// rollAttackTimer schedules the next attack with +/-25% jitter around the
// phase's base interval.
func (b *Boss) rollAttackTimer(now time.Time) {
	interval := b.Phase().AttackInterval
	if interval <= 0 {
		interval = 3.0
	}
	if b.rng != nil {
		interval *= 0.75 + b.rng.Float64()*0.5
	}
	b.nextAttackAt = now.Add(secondsToDuration(interval))
}

func (b *Boss) rollMinionTimer(now time.Time) {
	rate := b.Phase().MinionRate
	if rate <= 0 {
		return
	}
	b.nextMinionAt = now.Add(secondsToDuration(rate))
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
