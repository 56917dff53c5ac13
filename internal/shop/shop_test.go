package shop

import (
	"errors"
	"testing"

	"github.com/samdwyer/monsterslayer/internal/gamedata"
	"github.com/samdwyer/monsterslayer/internal/save"
)

func newTestShop(t *testing.T) (*Shop, *save.Manager) {
	t.Helper()
	saves := save.NewManager(save.NewMemoryStore())
	s := New(gamedata.MustLoadWeaponRegistry(), gamedata.MustLoadUpgradeRegistry(), saves)
	return s, saves
}

func TestPurchaseWeapon(t *testing.T) {
	s, saves := newTestShop(t)

	// Fresh save: 0 souls, only the starting weapon.
	if saves.Souls() != 0 {
		t.Fatalf("fresh souls = %d, want 0", saves.Souls())
	}
	if !saves.Data().HasWeapon("basic_sword") {
		t.Fatal("fresh save should have basic_sword")
	}

	saves.AddSouls(500)
	if err := s.PurchaseWeapon("fire_sword"); err != nil {
		t.Fatalf("PurchaseWeapon(fire_sword) error = %v", err)
	}

	if saves.Souls() != 200 {
		t.Errorf("souls after 300-soul purchase = %d, want 200", saves.Souls())
	}
	if !saves.Data().HasWeapon("fire_sword") || !saves.Data().HasWeapon("basic_sword") {
		t.Errorf("unlockedWeapons = %v, want both ids", saves.Data().UnlockedWeapons)
	}
	if saves.WeaponTier("fire_sword") != 1 {
		t.Errorf("fire_sword tier = %d, want 1", saves.WeaponTier("fire_sword"))
	}
}

func TestPurchaseWeaponFailures(t *testing.T) {
	s, saves := newTestShop(t)
	saves.AddSouls(100)

	if err := s.PurchaseWeapon("excalibur"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown weapon error = %v, want ErrUnknownItem", err)
	}
	if err := s.PurchaseWeapon("basic_sword"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("owned weapon error = %v, want ErrAlreadyOwned", err)
	}
	if err := s.PurchaseWeapon("fire_sword"); !errors.Is(err, ErrInsufficientSouls) {
		t.Errorf("broke purchase error = %v, want ErrInsufficientSouls", err)
	}

	// No failure path may touch the balance.
	if saves.Souls() != 100 {
		t.Errorf("souls after failed purchases = %d, want 100", saves.Souls())
	}
}

func TestUpgradeWeapon(t *testing.T) {
	s, saves := newTestShop(t)
	saves.AddSouls(1000)

	// basic_sword tier 1 -> 2 costs 100, tier 2 -> 3 costs 250.
	if err := s.UpgradeWeapon("basic_sword"); err != nil {
		t.Fatalf("first upgrade error = %v", err)
	}
	if saves.WeaponTier("basic_sword") != 2 || saves.Souls() != 900 {
		t.Errorf("after first upgrade: tier %d souls %d, want 2 and 900",
			saves.WeaponTier("basic_sword"), saves.Souls())
	}

	if err := s.UpgradeWeapon("basic_sword"); err != nil {
		t.Fatalf("second upgrade error = %v", err)
	}
	if saves.WeaponTier("basic_sword") != 3 || saves.Souls() != 650 {
		t.Errorf("after second upgrade: tier %d souls %d, want 3 and 650",
			saves.WeaponTier("basic_sword"), saves.Souls())
	}

	if err := s.UpgradeWeapon("basic_sword"); !errors.Is(err, ErrMaxTier) {
		t.Errorf("max-tier upgrade error = %v, want ErrMaxTier", err)
	}
	if err := s.UpgradeWeapon("fire_sword"); !errors.Is(err, ErrLocked) {
		t.Errorf("locked upgrade error = %v, want ErrLocked", err)
	}
}

func TestPurchaseUpgrade(t *testing.T) {
	s, saves := newTestShop(t)
	saves.AddSouls(600)

	// soul_magnet tier 1 costs 200, tier 2 costs 500.
	if err := s.PurchaseUpgrade("soul_magnet"); err != nil {
		t.Fatalf("PurchaseUpgrade error = %v", err)
	}
	if saves.UpgradeTier("soul_magnet") != 1 || saves.Souls() != 400 {
		t.Errorf("after purchase: tier %d souls %d, want 1 and 400",
			saves.UpgradeTier("soul_magnet"), saves.Souls())
	}

	if err := s.PurchaseUpgrade("soul_magnet"); !errors.Is(err, ErrInsufficientSouls) {
		t.Errorf("tier 2 with 400 souls error = %v, want ErrInsufficientSouls", err)
	}
	if saves.UpgradeTier("soul_magnet") != 1 {
		t.Errorf("tier after failed purchase = %d, want 1", saves.UpgradeTier("soul_magnet"))
	}

	if err := s.PurchaseUpgrade("jetpack"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown upgrade error = %v, want ErrUnknownItem", err)
	}
}

func TestCostQueries(t *testing.T) {
	s, saves := newTestShop(t)

	if cost, ok := s.WeaponUpgradeCost("basic_sword"); !ok || cost != 100 {
		t.Errorf("WeaponUpgradeCost(basic_sword) = %d, %v, want 100, true", cost, ok)
	}
	if _, ok := s.WeaponUpgradeCost("fire_sword"); ok {
		t.Error("WeaponUpgradeCost of a locked weapon should not be ok")
	}
	if _, ok := s.WeaponUpgradeCost("excalibur"); ok {
		t.Error("WeaponUpgradeCost of an unknown weapon should not be ok")
	}

	saves.AddSouls(5000)
	saves.SetWeaponTier("basic_sword", 3)
	if _, ok := s.WeaponUpgradeCost("basic_sword"); ok {
		t.Error("WeaponUpgradeCost at max tier should not be ok")
	}

	if cost, ok := s.UpgradeCost("extra_life"); !ok || cost != 300 {
		t.Errorf("UpgradeCost(extra_life) = %d, %v, want 300, true", cost, ok)
	}
	saves.SetUpgradeTier("extra_life", 3)
	if _, ok := s.UpgradeCost("extra_life"); ok {
		t.Error("UpgradeCost at max tier should not be ok")
	}
}
