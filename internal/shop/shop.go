// Package shop implements weapon and upgrade purchases: cost lookups
// against the content registries, souls spending through the save layer.
package shop

import (
	"errors"
	"fmt"

	"github.com/samdwyer/monsterslayer/internal/gamedata"
	"github.com/samdwyer/monsterslayer/internal/save"
)

var (
	// ErrUnknownItem is returned for ids absent from the registries.
	ErrUnknownItem = errors.New("shop: unknown item")
	// ErrAlreadyOwned is returned when purchasing an unlocked weapon.
	ErrAlreadyOwned = errors.New("shop: already owned")
	// ErrLocked is returned when upgrading a weapon that is not unlocked.
	ErrLocked = errors.New("shop: weapon not unlocked")
	// ErrMaxTier is returned when upgrading past the last tier.
	ErrMaxTier = errors.New("shop: already at max tier")
	// ErrInsufficientSouls is returned when the balance cannot cover the cost.
	ErrInsufficientSouls = errors.New("shop: insufficient souls")
)

// Shop mediates purchases between the content registries and the save
// manager. Every failure path leaves the save untouched.
type Shop struct {
	weapons  *gamedata.WeaponRegistry
	upgrades *gamedata.UpgradeRegistry
	saves    *save.Manager
}

// New creates a shop over the given registries and save manager.
func New(weapons *gamedata.WeaponRegistry, upgrades *gamedata.UpgradeRegistry, saves *save.Manager) *Shop {
	return &Shop{
		weapons:  weapons,
		upgrades: upgrades,
		saves:    saves,
	}
}

// PurchaseWeapon spends the weapon's unlock cost and unlocks it at tier 1.
func (s *Shop) PurchaseWeapon(id string) error {
	def := s.weapons.GetByID(id)
	if def == nil {
		return fmt.Errorf("%w: weapon %q", ErrUnknownItem, id)
	}
	if s.saves.Data().HasWeapon(id) {
		return fmt.Errorf("%w: weapon %q", ErrAlreadyOwned, id)
	}

	ok, err := s.saves.SpendSouls(def.UnlockCost)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: weapon %q costs %d", ErrInsufficientSouls, id, def.UnlockCost)
	}

	s.saves.UnlockWeapon(id)
	return nil
}

// UpgradeWeapon spends the current tier's upgrade cost and raises the
// weapon's tier by one.
func (s *Shop) UpgradeWeapon(id string) error {
	def := s.weapons.GetByID(id)
	if def == nil {
		return fmt.Errorf("%w: weapon %q", ErrUnknownItem, id)
	}
	if !s.saves.Data().HasWeapon(id) {
		return fmt.Errorf("%w: weapon %q", ErrLocked, id)
	}

	current := s.saves.WeaponTier(id)
	if current >= def.MaxTier() {
		return fmt.Errorf("%w: weapon %q", ErrMaxTier, id)
	}

	cost := def.Tier(current).UpgradeCost
	ok, err := s.saves.SpendSouls(cost)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tier %d of %q costs %d", ErrInsufficientSouls, current+1, id, cost)
	}

	s.saves.SetWeaponTier(id, current+1)
	return nil
}

// PurchaseUpgrade spends the next tier's cost and raises the player
// upgrade's tier by one (tier 1 on first purchase).
func (s *Shop) PurchaseUpgrade(id string) error {
	def := s.upgrades.GetByID(id)
	if def == nil {
		return fmt.Errorf("%w: upgrade %q", ErrUnknownItem, id)
	}

	current := s.saves.UpgradeTier(id)
	if current >= def.MaxTier() {
		return fmt.Errorf("%w: upgrade %q", ErrMaxTier, id)
	}

	cost := def.Tier(current + 1).Cost
	ok, err := s.saves.SpendSouls(cost)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tier %d of %q costs %d", ErrInsufficientSouls, current+1, id, cost)
	}

	s.saves.SetUpgradeTier(id, current+1)
	return nil
}

// WeaponUpgradeCost returns the souls needed to raise the weapon to its
// next tier. ok is false for unknown, locked, or maxed weapons.
func (s *Shop) WeaponUpgradeCost(id string) (cost int, ok bool) {
	def := s.weapons.GetByID(id)
	if def == nil || !s.saves.Data().HasWeapon(id) {
		return 0, false
	}
	current := s.saves.WeaponTier(id)
	if current >= def.MaxTier() {
		return 0, false
	}
	return def.Tier(current).UpgradeCost, true
}

// UpgradeCost returns the souls needed for the player upgrade's next
// tier. ok is false for unknown or maxed upgrades.
func (s *Shop) UpgradeCost(id string) (cost int, ok bool) {
	def := s.upgrades.GetByID(id)
	if def == nil {
		return 0, false
	}
	current := s.saves.UpgradeTier(id)
	if current >= def.MaxTier() {
		return 0, false
	}
	return def.Tier(current + 1).Cost, true
}
