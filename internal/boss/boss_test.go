package boss

import (
	"testing"
	"time"

	"github.com/samdwyer/monsterslayer/internal/event"
	"github.com/samdwyer/monsterslayer/internal/gamedata"
)

func testBossDef() *gamedata.BossDef {
	return &gamedata.BossDef{
		ID:         "test_boss",
		Name:       "Test Boss",
		Health:     100,
		SoulReward: 500,
		Phases: []gamedata.BossPhaseDef{
			{Threshold: 1.0, AttackPattern: "ember_rain", AttackInterval: 4},
			{Threshold: 0.66, AttackPattern: "flame_wave", AttackInterval: 3},
			{Threshold: 0.33, AttackPattern: "inferno", AttackInterval: 2},
		},
	}
}

func newTestBoss(t *testing.T, bus *event.Bus) (*Boss, time.Time) {
	t.Helper()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b, err := New(testBossDef(), FlameTyrant{}, bus, nil, start)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b, start
}

func TestPhaseProgression(t *testing.T) {
	b, now := newTestBoss(t, event.NewBus())

	if b.PhaseIndex != 0 {
		t.Fatalf("starting phase = %d, want 0", b.PhaseIndex)
	}

	// 100% -> 60%: crosses the 0.66 threshold, advances exactly one phase.
	b.TakeDamage(40, now)
	if b.PhaseIndex != 1 {
		t.Errorf("phase after 60%% health = %d, want 1", b.PhaseIndex)
	}

	// Wait out the invulnerability window, then 60% -> 30%.
	now = now.Add(InvulnerabilityWindow + time.Millisecond)
	b.TakeDamage(30, now)
	if b.PhaseIndex != 2 {
		t.Errorf("phase after 30%% health = %d, want 2", b.PhaseIndex)
	}

	// Further damage in the final phase neither skips nor regresses.
	now = now.Add(InvulnerabilityWindow + time.Millisecond)
	b.TakeDamage(10, now)
	if b.PhaseIndex != 2 {
		t.Errorf("phase after more damage = %d, want 2", b.PhaseIndex)
	}
}

func TestSingleHitAdvancesOnePhaseOnly(t *testing.T) {
	b, now := newTestBoss(t, event.NewBus())

	// One enormous hit to 10% health still only advances one phase.
	b.TakeDamage(90, now)
	if b.PhaseIndex != 1 {
		t.Errorf("phase after single deep hit = %d, want 1 (never skip)", b.PhaseIndex)
	}
}

func TestPhaseChangeEventAndInvulnerability(t *testing.T) {
	bus := event.NewBus()
	var phases []event.BossPhasePayload
	bus.Subscribe(event.BossPhaseChanged, event.ListenerFunc(func(e event.Event) {
		phases = append(phases, e.Data.(event.BossPhasePayload))
	}))

	b, now := newTestBoss(t, bus)
	b.TakeDamage(40, now)

	if len(phases) != 1 {
		t.Fatalf("phase events = %d, want 1", len(phases))
	}
	if phases[0].Phase != 1 || phases[0].AttackPattern != "flame_wave" {
		t.Errorf("phase payload = %+v", phases[0])
	}

	// Damage during the invulnerability window is ignored entirely.
	if got := b.TakeDamage(50, now.Add(time.Second)); got != 0 {
		t.Errorf("damage while invulnerable = %d, want 0", got)
	}
	if b.Health != 60 {
		t.Errorf("health after invulnerable hit = %d, want 60", b.Health)
	}

	// After the window expires, damage lands again.
	later := now.Add(InvulnerabilityWindow + time.Millisecond)
	if got := b.TakeDamage(5, later); got != 5 {
		t.Errorf("damage after window = %d, want 5", got)
	}
}

func TestDefeat(t *testing.T) {
	bus := event.NewBus()
	var defeats []event.BossDefeatedPayload
	bus.Subscribe(event.BossDefeated, event.ListenerFunc(func(e event.Event) {
		defeats = append(defeats, e.Data.(event.BossDefeatedPayload))
	}))

	b, now := newTestBoss(t, bus)

	// Chew through all phases with window waits in between.
	for !b.Defeated {
		b.TakeDamage(40, now)
		now = now.Add(InvulnerabilityWindow + time.Millisecond)
	}

	if b.Health != 0 {
		t.Errorf("health after defeat = %d, want 0", b.Health)
	}
	if len(defeats) != 1 {
		t.Fatalf("defeat events = %d, want exactly 1", len(defeats))
	}
	if defeats[0].BossID != "test_boss" || defeats[0].SoulReward != 500 {
		t.Errorf("defeat payload = %+v", defeats[0])
	}

	// A dead boss ignores both damage and updates.
	if got := b.TakeDamage(100, now); got != 0 {
		t.Errorf("damage after defeat = %d, want 0", got)
	}
	var attacks int
	bus.Subscribe(event.BossAttack, event.ListenerFunc(func(event.Event) { attacks++ }))
	b.Update(now.Add(time.Hour))
	if attacks != 0 {
		t.Errorf("defeated boss emitted %d attacks, want 0", attacks)
	}
}

func TestUpdateFiresAttacksAndMinions(t *testing.T) {
	bus := event.NewBus()
	var attacks []event.BossAttackPayload
	var minions []event.BossMinionSpawnPayload
	bus.Subscribe(event.BossAttack, event.ListenerFunc(func(e event.Event) {
		attacks = append(attacks, e.Data.(event.BossAttackPayload))
	}))
	bus.Subscribe(event.BossMinionSpawn, event.ListenerFunc(func(e event.Event) {
		minions = append(minions, e.Data.(event.BossMinionSpawnPayload))
	}))

	def := testBossDef()
	def.Phases[0].MinionType = "fire_imp"
	def.Phases[0].MinionRate = 2

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b, err := New(def, FlameTyrant{}, bus, nil, start)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Before any timer elapses, nothing fires.
	b.Update(start.Add(time.Second))
	if len(attacks) != 0 || len(minions) != 0 {
		t.Fatalf("timers fired early: %d attacks, %d minions", len(attacks), len(minions))
	}

	// Phase 0 attack interval is 4s (no rng jitter with nil rng).
	b.Update(start.Add(4 * time.Second))
	if len(attacks) != 1 {
		t.Fatalf("attacks after interval = %d, want 1", len(attacks))
	}
	if attacks[0].AttackID == "" || attacks[0].Phase != 0 {
		t.Errorf("attack payload = %+v", attacks[0])
	}

	// Minion rate is 2s, so the same update also spawned one.
	if len(minions) != 1 || minions[0].MinionType != "fire_imp" {
		t.Errorf("minions = %+v, want one fire_imp", minions)
	}
}

func TestPickerFor(t *testing.T) {
	ids := []string{"flame_tyrant", "frost_warden", "storm_caller", "grave_monarch", "void_reaper"}
	for _, id := range ids {
		picker := PickerFor(id)
		if picker == nil {
			t.Errorf("PickerFor(%q) = nil", id)
			continue
		}
		if picker.ID() != id {
			t.Errorf("PickerFor(%q).ID() = %q", id, picker.ID())
		}
	}
	if PickerFor("slime_king") != nil {
		t.Error("PickerFor(unknown) should return nil")
	}
}

func TestPickersCoverTheirPatterns(t *testing.T) {
	bosses := gamedata.MustLoadBossRegistry()
	for _, def := range bosses.All() {
		picker := PickerFor(def.ID)
		if picker == nil {
			t.Errorf("no picker for boss %s", def.ID)
			continue
		}
		for i, phase := range def.Phases {
			if got := picker.Pick(i, phase.AttackPattern, nil); got == "" {
				t.Errorf("boss %s phase %d pattern %q picked empty attack", def.ID, i, phase.AttackPattern)
			}
		}
	}
}
