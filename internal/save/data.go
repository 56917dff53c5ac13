// Package save implements persistence of player progress: a versioned
// save record with whitelist-validated import, checksum-guarded storage,
// and souls accounting. Corrupt or missing storage always degrades to a
// fully defaulted record rather than failing.
package save

import "time"

// CurrentVersion is stamped into every persisted record. There are no
// per-version transforms yet; migrate only normalizes the record shape.
const CurrentVersion = 3

// Storage keys, matching the original browser key-value store layout.
const (
	SaveKey     = "monster_slayer_save"
	SettingsKey = "monster_slayer_settings"
)

// StartingWeapon is unlocked and equipped on every fresh or migrated save.
const StartingWeapon = "basic_sword"

// MaxStars is the highest star rating a level can hold.
const MaxStars = 3

// Data is the versioned save record.
type Data struct {
	Version         int            `json:"version"`
	PlayerName      string         `json:"playerName"`
	Souls           int            `json:"souls"`
	UnlockedWeapons []string       `json:"unlockedWeapons"`
	WeaponTiers     map[string]int `json:"weaponTiers"`
	EquippedWeapon  string         `json:"equippedWeapon"`
	Upgrades        map[string]int `json:"upgrades"`
	CompletedLevels []string       `json:"completedLevels"`
	LevelStars      map[string]int `json:"levelStars"`
	HighScores      map[string]int `json:"highScores"`
	PersonalBests   map[string]int `json:"personalBests"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

// NewData returns a fully defaulted save record.
func NewData(now time.Time) *Data {
	stamp := now.UTC().Format(time.RFC3339)
	return &Data{
		Version:         CurrentVersion,
		Souls:           0,
		UnlockedWeapons: []string{StartingWeapon},
		WeaponTiers:     map[string]int{StartingWeapon: 1},
		EquippedWeapon:  StartingWeapon,
		Upgrades:        map[string]int{},
		CompletedLevels: []string{},
		LevelStars:      map[string]int{},
		HighScores:      map[string]int{},
		PersonalBests:   map[string]int{},
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}

// HasWeapon returns true if the weapon id is in the unlocked set.
func (d *Data) HasWeapon(id string) bool {
	for _, w := range d.UnlockedWeapons {
		if w == id {
			return true
		}
	}
	return false
}

// HasCompletedLevel returns true if the level id is in the completed set.
func (d *Data) HasCompletedLevel(id string) bool {
	for _, l := range d.CompletedLevels {
		if l == id {
			return true
		}
	}
	return false
}

// migrate normalizes a loaded record in place and stamps the current
// version. The original migration stub carried no version-to-version
// transformation rules, so none exist here either; this only repairs
// shape: nil maps, missing starting weapon, out-of-range values.
func migrate(d *Data) {
	if d.UnlockedWeapons == nil {
		d.UnlockedWeapons = []string{}
	}
	if d.WeaponTiers == nil {
		d.WeaponTiers = map[string]int{}
	}
	if d.Upgrades == nil {
		d.Upgrades = map[string]int{}
	}
	if d.CompletedLevels == nil {
		d.CompletedLevels = []string{}
	}
	if d.LevelStars == nil {
		d.LevelStars = map[string]int{}
	}
	if d.HighScores == nil {
		d.HighScores = map[string]int{}
	}
	if d.PersonalBests == nil {
		d.PersonalBests = map[string]int{}
	}

	if d.Souls < 0 {
		d.Souls = 0
	}
	for id, stars := range d.LevelStars {
		if stars < 0 {
			d.LevelStars[id] = 0
		} else if stars > MaxStars {
			d.LevelStars[id] = MaxStars
		}
	}

	// The starting weapon can never be lost.
	if !d.HasWeapon(StartingWeapon) {
		d.UnlockedWeapons = append(d.UnlockedWeapons, StartingWeapon)
	}
	if d.WeaponTiers[StartingWeapon] < 1 {
		d.WeaponTiers[StartingWeapon] = 1
	}
	if d.EquippedWeapon == "" || !d.HasWeapon(d.EquippedWeapon) {
		d.EquippedWeapon = StartingWeapon
	}

	d.Version = CurrentVersion
}

// Settings holds audio and UI preferences, persisted separately from the
// save record.
type Settings struct {
	MusicVolume    float64 `json:"musicVolume"`
	SFXVolume      float64 `json:"sfxVolume"`
	Haptics        bool    `json:"haptics"`
	ReducedEffects bool    `json:"reducedEffects"`
	LeftHanded     bool    `json:"leftHanded"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		MusicVolume: 0.7,
		SFXVolume:   1.0,
		Haptics:     true,
	}
}
