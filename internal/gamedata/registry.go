package gamedata

import "errors"

// WeaponRegistry holds loaded weapon definitions and provides lookup utilities.
type WeaponRegistry struct {
	weapons map[string]*WeaponDef
	all     []WeaponDef
}

// NewWeaponRegistry creates a registry from loaded weapon definitions.
func NewWeaponRegistry(weapons []WeaponDef) *WeaponRegistry {
	registry := &WeaponRegistry{
		weapons: make(map[string]*WeaponDef),
		all:     weapons,
	}
	for i := range weapons {
		registry.weapons[weapons[i].ID] = &weapons[i]
	}
	return registry
}

// LoadWeaponRegistry loads and creates a registry from the embedded weapons.json.
func LoadWeaponRegistry() (*WeaponRegistry, error) {
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, errors.New("no weapons loaded from weapons.json")
	}
	return NewWeaponRegistry(weapons), nil
}

// MustLoadWeaponRegistry loads a registry, panicking on error.
func MustLoadWeaponRegistry() *WeaponRegistry {
	registry, err := LoadWeaponRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the weapon definition with the given ID, or nil if not found.
func (r *WeaponRegistry) GetByID(id string) *WeaponDef {
	return r.weapons[id]
}

// All returns all weapon definitions.
func (r *WeaponRegistry) All() []WeaponDef {
	return r.all
}

// Count returns the number of weapons in the registry.
func (r *WeaponRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// UpgradeRegistry
// =============================================================================

// UpgradeRegistry holds loaded upgrade definitions and provides lookup utilities.
type UpgradeRegistry struct {
	upgrades map[string]*UpgradeDef
	all      []UpgradeDef
}

// NewUpgradeRegistry creates a registry from loaded upgrade definitions.
func NewUpgradeRegistry(upgrades []UpgradeDef) *UpgradeRegistry {
	registry := &UpgradeRegistry{
		upgrades: make(map[string]*UpgradeDef),
		all:      upgrades,
	}
	for i := range upgrades {
		registry.upgrades[upgrades[i].ID] = &upgrades[i]
	}
	return registry
}

// LoadUpgradeRegistry loads and creates a registry from the embedded upgrades.json.
func LoadUpgradeRegistry() (*UpgradeRegistry, error) {
	upgrades, err := LoadUpgrades()
	if err != nil {
		return nil, err
	}
	if len(upgrades) == 0 {
		return nil, errors.New("no upgrades loaded from upgrades.json")
	}
	return NewUpgradeRegistry(upgrades), nil
}

// MustLoadUpgradeRegistry loads a registry, panicking on error.
func MustLoadUpgradeRegistry() *UpgradeRegistry {
	registry, err := LoadUpgradeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the upgrade definition with the given ID, or nil if not found.
func (r *UpgradeRegistry) GetByID(id string) *UpgradeDef {
	return r.upgrades[id]
}

// All returns all upgrade definitions.
func (r *UpgradeRegistry) All() []UpgradeDef {
	return r.all
}

// Count returns the number of upgrades in the registry.
func (r *UpgradeRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// BossRegistry
// =============================================================================

// BossRegistry holds loaded boss definitions and provides lookup utilities.
type BossRegistry struct {
	bosses map[string]*BossDef
	all    []BossDef
}

// NewBossRegistry creates a registry from loaded boss definitions.
func NewBossRegistry(bosses []BossDef) *BossRegistry {
	registry := &BossRegistry{
		bosses: make(map[string]*BossDef),
		all:    bosses,
	}
	for i := range bosses {
		registry.bosses[bosses[i].ID] = &bosses[i]
	}
	return registry
}

// LoadBossRegistry loads and creates a registry from the embedded bosses.json.
func LoadBossRegistry() (*BossRegistry, error) {
	bosses, err := LoadBosses()
	if err != nil {
		return nil, err
	}
	if len(bosses) == 0 {
		return nil, errors.New("no bosses loaded from bosses.json")
	}
	return NewBossRegistry(bosses), nil
}

// MustLoadBossRegistry loads a registry, panicking on error.
func MustLoadBossRegistry() *BossRegistry {
	registry, err := LoadBossRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the boss definition with the given ID, or nil if not found.
func (r *BossRegistry) GetByID(id string) *BossDef {
	return r.bosses[id]
}

// All returns all boss definitions.
func (r *BossRegistry) All() []BossDef {
	return r.all
}

// Count returns the number of bosses in the registry.
func (r *BossRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// LevelRegistry
// =============================================================================

// LevelRegistry holds loaded level definitions and provides lookup utilities.
type LevelRegistry struct {
	levels map[string]*LevelDef
	all    []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	registry := &LevelRegistry{
		levels: make(map[string]*LevelDef),
		all:    levels,
	}
	for i := range levels {
		registry.levels[levels[i].ID] = &levels[i]
	}
	return registry
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	return r.levels[id]
}

// ByWorld returns all levels in the given world, in file order.
func (r *LevelRegistry) ByWorld(world int) []LevelDef {
	var result []LevelDef
	for _, l := range r.all {
		if l.World == world {
			result = append(result, l)
		}
	}
	return result
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.all
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.all)
}
