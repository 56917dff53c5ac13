package event

const (
	// ChainDamage asks every monster in the horde to check whether the
	// chain from the origin monster reaches it.
	ChainDamage Type = "chain_damage"
	// SpreadDamage is an area burst centered on the origin monster.
	SpreadDamage Type = "spread_damage"
	// BossPhaseChanged fires when a boss crosses a phase threshold.
	BossPhaseChanged Type = "boss_phase_changed"
	// BossAttack fires when a boss's attack timer elapses.
	BossAttack Type = "boss_attack"
	// BossMinionSpawn fires when a boss phase spawns a minion.
	BossMinionSpawn Type = "boss_minion_spawn"
	// BossDefeated fires once when a boss's health reaches zero.
	BossDefeated Type = "boss_defeated"
	// CriticalError routes the player to the failure screen.
	CriticalError Type = "critical_error"
)

// ChainDamagePayload carries a chain_damage weapon effect.
type ChainDamagePayload struct {
	OriginID string // monster the slice landed on
	Damage   int    // damage dealt to each chained monster
	Jumps    int    // maximum number of monsters the chain may reach
}

// SpreadDamagePayload carries a spread_damage weapon effect.
type SpreadDamagePayload struct {
	OriginID string
	Damage   int
	Radius   float64 // world units around the origin
}

// BossPhasePayload describes a phase transition.
type BossPhasePayload struct {
	BossID        string
	Phase         int // new phase index
	AttackPattern string
}

// BossAttackPayload describes an attack the boss has committed to.
type BossAttackPayload struct {
	BossID   string
	AttackID string
	Phase    int
}

// BossMinionSpawnPayload describes a minion spawn request.
type BossMinionSpawnPayload struct {
	BossID     string
	MinionType string
}

// BossDefeatedPayload carries the reward for defeating a boss.
type BossDefeatedPayload struct {
	BossID     string
	SoulReward int
}

// CriticalErrorPayload describes an unrecoverable error for the UI layer.
type CriticalErrorPayload struct {
	Category string
	Message  string
	Action   string
}
