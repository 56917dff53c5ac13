package gamedata

// EffectKind names a weapon-tier effect applied to a sliced monster.
type EffectKind string

const (
	EffectBonusDamage    EffectKind = "bonus_damage"
	EffectDamageOverTime EffectKind = "damage_over_time"
	EffectSlow           EffectKind = "slow"
	EffectStun           EffectKind = "stun"
	EffectChainDamage    EffectKind = "chain_damage"
	EffectSpreadDamage   EffectKind = "spread_damage"
	EffectFreezeChance   EffectKind = "freeze_chance"
	EffectReveal         EffectKind = "reveal"
)

// EffectDef defines a single effect on a weapon tier. Only the fields
// relevant to the kind are populated; the rest stay zero. Unknown kinds
// are preserved here and ignored at resolution time.
type EffectDef struct {
	Kind       EffectKind `json:"kind"`
	Amount     int        `json:"amount,omitempty"`     // flat damage (bonus/chain/spread)
	TargetType string     `json:"targetType,omitempty"` // bonus_damage restriction; empty matches all
	Duration   float64    `json:"duration,omitempty"`   // seconds (dot/slow/stun/freeze/reveal)
	TickDamage int        `json:"tickDamage,omitempty"` // damage_over_time per-tick damage
	Factor     float64    `json:"factor,omitempty"`     // slow speed multiplier (0..1)
	Chance     float64    `json:"chance,omitempty"`     // freeze_chance probability (0..1)
	Jumps      int        `json:"jumps,omitempty"`      // chain_damage maximum jumps
	Radius     float64    `json:"radius,omitempty"`     // spread_damage radius in world units
}

// WeaponTier holds one upgrade level of a weapon.
type WeaponTier struct {
	UpgradeCost int         `json:"upgradeCost"` // souls to advance to the next tier; 0 on the last tier
	Effects     []EffectDef `json:"effects"`
}

// WeaponDef defines a weapon loaded from JSON.
type WeaponDef struct {
	ID         string       `json:"id"`         // Unique identifier (e.g., "fire_sword")
	Name       string       `json:"name"`       // Display name (e.g., "Fire Sword")
	UnlockCost int          `json:"unlockCost"` // Souls to unlock; 0 for the starting weapon
	Tiers      []WeaponTier `json:"tiers"`
}

// MaxTier returns the highest tier number (tiers are 1-based).
func (w *WeaponDef) MaxTier() int {
	return len(w.Tiers)
}

// Tier returns the 1-based tier, or nil if out of range.
func (w *WeaponDef) Tier(n int) *WeaponTier {
	if n < 1 || n > len(w.Tiers) {
		return nil
	}
	return &w.Tiers[n-1]
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}

// MustLoadWeapons loads weapon definitions, panicking on error.
func MustLoadWeapons() []WeaponDef {
	weapons, err := LoadWeapons()
	if err != nil {
		panic(err)
	}
	return weapons
}
