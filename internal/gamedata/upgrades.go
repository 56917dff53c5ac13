package gamedata

// UpgradeTier holds one level of a player upgrade.
type UpgradeTier struct {
	Cost  int     `json:"cost"`  // souls to purchase this tier
	Value float64 `json:"value"` // magnitude; meaning depends on the upgrade
}

// UpgradeDef defines a purchasable player upgrade loaded from JSON.
type UpgradeDef struct {
	ID          string        `json:"id"`          // Unique identifier (e.g., "soul_magnet")
	Name        string        `json:"name"`        // Display name
	Description string        `json:"description"` // Shop description
	Tiers       []UpgradeTier `json:"tiers"`
}

// MaxTier returns the highest tier number (tiers are 1-based).
func (u *UpgradeDef) MaxTier() int {
	return len(u.Tiers)
}

// Tier returns the 1-based tier, or nil if out of range.
func (u *UpgradeDef) Tier(n int) *UpgradeTier {
	if n < 1 || n > len(u.Tiers) {
		return nil
	}
	return &u.Tiers[n-1]
}

// UpgradesFile represents the structure of upgrades.json.
type UpgradesFile struct {
	Upgrades []UpgradeDef `json:"upgrades"`
}

// LoadUpgrades loads upgrade definitions from the embedded upgrades.json file.
func LoadUpgrades() ([]UpgradeDef, error) {
	file, err := Load[UpgradesFile]("upgrades.json")
	if err != nil {
		return nil, err
	}
	return file.Upgrades, nil
}

// MustLoadUpgrades loads upgrade definitions, panicking on error.
func MustLoadUpgrades() []UpgradeDef {
	upgrades, err := LoadUpgrades()
	if err != nil {
		panic(err)
	}
	return upgrades
}
