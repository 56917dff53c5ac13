package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNegativeAmount is returned by souls mutators given a negative amount.
var ErrNegativeAmount = errors.New("save: amount must be non-negative")

// Manager owns the in-memory save record and settings and persists every
// mutation immediately through its Store. It replaces the original's
// process-wide singleton: construct one and pass it where it is needed.
//
// Persistence failures never roll back the in-memory state; they are
// reported through the error hook (last-write-wins, no transactions).
type Manager struct {
	store    Store
	data     *Data
	settings *Settings

	now     func() time.Time
	onError func(error)
}

// NewManager creates a manager over the given store. Nothing is read
// until Load (or the first accessor) runs.
func NewManager(store Store) *Manager {
	return &Manager{
		store:   store,
		now:     time.Now,
		onError: func(error) {},
	}
}

// OnPersistError registers a hook invoked when a storage write fails.
func (m *Manager) OnPersistError(fn func(error)) {
	if fn != nil {
		m.onError = fn
	}
}

// Load returns the save record, reading it from storage on first call.
// It never fails: missing, corrupt, checksum-mismatched, or
// older-versioned storage all yield a usable record.
func (m *Manager) Load() *Data {
	if m.data != nil {
		return m.data
	}

	raw, err := m.store.Get(SaveKey)
	if err != nil {
		// Missing is the first-launch path; anything else degrades the
		// same way rather than blocking play.
		m.data = NewData(m.now())
		return m.data
	}

	body, err := unseal(raw)
	if err != nil {
		m.data = NewData(m.now())
		return m.data
	}

	var loaded Data
	if err := json.Unmarshal(body, &loaded); err != nil {
		m.data = NewData(m.now())
		return m.data
	}

	migrate(&loaded)
	m.data = &loaded
	return m.data
}

// Data returns the current save record, loading it if necessary.
func (m *Manager) Data() *Data {
	return m.Load()
}

// Save persists the current record, stamping updatedAt.
func (m *Manager) Save() error {
	d := m.Load()
	d.UpdatedAt = m.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode save record: %w", err)
	}
	sealed, err := seal(body)
	if err != nil {
		return err
	}
	return m.store.Set(SaveKey, sealed)
}

// persist is Save with failures routed to the error hook; mutators call
// it so a dying disk degrades to an in-memory session instead of an error
// on every gameplay action.
func (m *Manager) persist() {
	if err := m.Save(); err != nil {
		m.onError(err)
	}
}

// Export returns the canonical JSON of the save record (no envelope),
// suitable for Import on another device.
func (m *Manager) Export() (string, error) {
	body, err := json.Marshal(m.Load())
	if err != nil {
		return "", fmt.Errorf("failed to export save record: %w", err)
	}
	return string(body), nil
}

// Import validates an external save payload and, if it passes the
// whitelist, replaces the current record with it. Returns false on any
// validation failure, leaving existing data untouched.
func (m *Manager) Import(raw string) bool {
	imported, err := validateImport([]byte(raw), NewData(m.now()))
	if err != nil {
		return false
	}
	migrate(imported)
	m.data = imported
	m.persist()
	return true
}

// Reset replaces the save record with defaults and persists them.
func (m *Manager) Reset() {
	m.data = NewData(m.now())
	m.persist()
}

// =============================================================================
// Souls
// =============================================================================

// Souls returns the current balance.
func (m *Manager) Souls() int {
	return m.Load().Souls
}

// AddSouls increases the balance. Negative amounts are an error and do
// not mutate state.
func (m *Manager) AddSouls(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	m.Load().Souls += amount
	m.persist()
	return nil
}

// SpendSouls decreases the balance by exactly amount. It returns false
// without mutating when the balance is insufficient, and ErrNegativeAmount
// for negative amounts.
func (m *Manager) SpendSouls(amount int) (bool, error) {
	if amount < 0 {
		return false, ErrNegativeAmount
	}
	d := m.Load()
	if d.Souls < amount {
		return false, nil
	}
	d.Souls -= amount
	m.persist()
	return true, nil
}

// =============================================================================
// Weapons and upgrades
// =============================================================================

// UnlockWeapon adds a weapon to the unlocked set at tier 1.
func (m *Manager) UnlockWeapon(id string) {
	d := m.Load()
	if d.HasWeapon(id) {
		return
	}
	d.UnlockedWeapons = append(d.UnlockedWeapons, id)
	if d.WeaponTiers[id] < 1 {
		d.WeaponTiers[id] = 1
	}
	m.persist()
}

// WeaponTier returns the owned tier of a weapon (0 if locked).
func (m *Manager) WeaponTier(id string) int {
	return m.Load().WeaponTiers[id]
}

// SetWeaponTier records the owned tier of a weapon.
func (m *Manager) SetWeaponTier(id string, tier int) {
	m.Load().WeaponTiers[id] = tier
	m.persist()
}

// EquipWeapon equips an unlocked weapon. Returns false for locked ids.
func (m *Manager) EquipWeapon(id string) bool {
	d := m.Load()
	if !d.HasWeapon(id) {
		return false
	}
	d.EquippedWeapon = id
	m.persist()
	return true
}

// EquippedWeapon returns the currently equipped weapon id.
func (m *Manager) EquippedWeapon() string {
	return m.Load().EquippedWeapon
}

// UpgradeTier returns the owned tier of a player upgrade (0 if unowned).
func (m *Manager) UpgradeTier(id string) int {
	return m.Load().Upgrades[id]
}

// SetUpgradeTier records the owned tier of a player upgrade.
func (m *Manager) SetUpgradeTier(id string, tier int) {
	m.Load().Upgrades[id] = tier
	m.persist()
}

// =============================================================================
// Progress
// =============================================================================

// CompleteLevel adds a level to the completed set.
func (m *Manager) CompleteLevel(id string) {
	d := m.Load()
	if d.HasCompletedLevel(id) {
		return
	}
	d.CompletedLevels = append(d.CompletedLevels, id)
	m.persist()
}

// SetLevelStars records a star rating, clamped to 0-3. An existing higher
// rating is kept.
func (m *Manager) SetLevelStars(id string, stars int) {
	if stars < 0 {
		stars = 0
	} else if stars > MaxStars {
		stars = MaxStars
	}
	d := m.Load()
	if stars <= d.LevelStars[id] {
		return
	}
	d.LevelStars[id] = stars
	m.persist()
}

// RecordHighScore keeps the higher of the stored and given score for a
// mode, reporting whether the given score is a new best.
func (m *Manager) RecordHighScore(mode string, score int) bool {
	d := m.Load()
	if score <= d.HighScores[mode] {
		return false
	}
	d.HighScores[mode] = score
	m.persist()
	return true
}

// RecordPersonalBest keeps the higher of the stored and given value for a
// tracked stat, reporting whether it is a new best.
func (m *Manager) RecordPersonalBest(stat string, value int) bool {
	d := m.Load()
	if value <= d.PersonalBests[stat] {
		return false
	}
	d.PersonalBests[stat] = value
	m.persist()
	return true
}

// SetPlayerName records the player's display name.
func (m *Manager) SetPlayerName(name string) {
	m.Load().PlayerName = name
	m.persist()
}

// =============================================================================
// Settings
// =============================================================================

// Settings returns the current preferences, reading them from storage on
// first call. Corrupt or missing settings fall back to defaults.
func (m *Manager) Settings() Settings {
	if m.settings != nil {
		return *m.settings
	}

	defaults := DefaultSettings()
	raw, err := m.store.Get(SettingsKey)
	if err != nil {
		m.settings = &defaults
		return *m.settings
	}

	loaded := defaults
	if err := json.Unmarshal(raw, &loaded); err != nil {
		m.settings = &defaults
		return *m.settings
	}
	m.settings = &loaded
	return *m.settings
}

// UpdateSettings applies fn to the preferences and persists them.
// Settings are stored bare (no checksum envelope).
func (m *Manager) UpdateSettings(fn func(*Settings)) {
	current := m.Settings()
	fn(&current)
	m.settings = &current

	raw, err := json.Marshal(current)
	if err != nil {
		m.onError(fmt.Errorf("failed to encode settings: %w", err))
		return
	}
	if err := m.store.Set(SettingsKey, raw); err != nil {
		m.onError(err)
	}
}
