package gamedata

// BossPhaseDef defines one combat phase of a boss.
//
// Threshold is the health fraction at or below which the phase is
// entered; phases are listed in descending threshold order and the first
// phase always has threshold 1.0.
type BossPhaseDef struct {
	Threshold      float64 `json:"threshold"`
	AttackPattern  string  `json:"attackPattern"`            // tag the boss's attack picker maps to concrete attacks
	AttackInterval float64 `json:"attackInterval"`           // base seconds between attacks
	MinionType     string  `json:"minionType,omitempty"`     // minion spawned during this phase
	MinionRate     float64 `json:"minionRate,omitempty"`     // seconds between spawns; 0 disables spawning
}

// BossDef defines a boss loaded from JSON.
type BossDef struct {
	ID         string         `json:"id"`         // Unique identifier (e.g., "flame_tyrant")
	Name       string         `json:"name"`       // Display name
	Health     int            `json:"health"`     // Starting health
	SoulReward int            `json:"soulReward"` // Souls granted on defeat
	Phases     []BossPhaseDef `json:"phases"`
}

// PhaseCount returns the number of phases.
func (b *BossDef) PhaseCount() int {
	return len(b.Phases)
}

// Phase returns the phase at the given index, or nil if out of range.
func (b *BossDef) Phase(i int) *BossPhaseDef {
	if i < 0 || i >= len(b.Phases) {
		return nil
	}
	return &b.Phases[i]
}

// BossesFile represents the structure of bosses.json.
type BossesFile struct {
	Bosses []BossDef `json:"bosses"`
}

// LoadBosses loads boss definitions from the embedded bosses.json file.
func LoadBosses() ([]BossDef, error) {
	file, err := Load[BossesFile]("bosses.json")
	if err != nil {
		return nil, err
	}
	return file.Bosses, nil
}

// MustLoadBosses loads boss definitions, panicking on error.
func MustLoadBosses() []BossDef {
	bosses, err := LoadBosses()
	if err != nil {
		panic(err)
	}
	return bosses
}
