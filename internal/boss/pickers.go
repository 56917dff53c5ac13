package boss

import "math/rand"

// The five bosses share every piece of phase and health bookkeeping; each
// picker below only translates its phases' attack-pattern tags into
// concrete attack ids, occasionally rolling between variants.

// pickOne returns a random element, or the first when rng is nil.
func pickOne(rng *rand.Rand, options ...string) string {
	if len(options) == 0 {
		return ""
	}
	if rng == nil {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}

// FlameTyrant is the world 1 boss.
type FlameTyrant struct{}

func (FlameTyrant) ID() string { return "flame_tyrant" }

func (FlameTyrant) Pick(phase int, pattern string, rng *rand.Rand) string {
	switch pattern {
	case "ember_rain":
		return pickOne(rng, "ember_rain", "cinder_toss")
	case "flame_wave":
		return pickOne(rng, "flame_wave", "lava_burst")
	case "inferno":
		// Final phase always opens with the big one.
		if phase == 2 {
			return "inferno"
		}
		return pickOne(rng, "inferno", "flame_wave")
	default:
		return "cinder_toss"
	}
}

// FrostWarden is the world 2 boss.
type FrostWarden struct{}

func (FrostWarden) ID() string { return "frost_warden" }

func (FrostWarden) Pick(phase int, pattern string, rng *rand.Rand) string {
	switch pattern {
	case "icicle_barrage":
		return "icicle_barrage"
	case "glacial_slam":
		return pickOne(rng, "glacial_slam", "icicle_barrage")
	case "blizzard":
		return pickOne(rng, "blizzard", "glacial_slam")
	case "absolute_zero":
		return pickOne(rng, "absolute_zero", "blizzard", "shatter")
	default:
		return "icicle_barrage"
	}
}

// StormCaller is the world 3 boss.
type StormCaller struct{}

func (StormCaller) ID() string { return "storm_caller" }

func (StormCaller) Pick(phase int, pattern string, rng *rand.Rand) string {
	switch pattern {
	case "static_field":
		return pickOne(rng, "static_field", "arc_bolt")
	case "chain_lightning":
		return pickOne(rng, "chain_lightning", "arc_bolt")
	case "tempest":
		return pickOne(rng, "tempest", "chain_lightning", "thunderclap")
	default:
		return "arc_bolt"
	}
}

// GraveMonarch is the world 4 boss.
type GraveMonarch struct{}

func (GraveMonarch) ID() string { return "grave_monarch" }

func (GraveMonarch) Pick(phase int, pattern string, rng *rand.Rand) string {
	switch pattern {
	case "bone_volley":
		return "bone_volley"
	case "grasping_hands":
		return pickOne(rng, "grasping_hands", "bone_volley")
	case "soul_harvest":
		return pickOne(rng, "soul_harvest", "grasping_hands")
	case "death_march":
		return pickOne(rng, "death_march", "soul_harvest", "bone_storm")
	default:
		return "bone_volley"
	}
}

// VoidReaper is the final boss.
type VoidReaper struct{}

func (VoidReaper) ID() string { return "void_reaper" }

func (VoidReaper) Pick(phase int, pattern string, rng *rand.Rand) string {
	switch pattern {
	case "rift_slash":
		return "rift_slash"
	case "shadow_step":
		return pickOne(rng, "shadow_step", "rift_slash")
	case "void_pools":
		return pickOne(rng, "void_pools", "shadow_step")
	case "event_horizon":
		return pickOne(rng, "event_horizon", "void_pools")
	case "oblivion":
		// Last phase alternates between everything it has.
		return pickOne(rng, "oblivion", "event_horizon", "rift_slash")
	default:
		return "rift_slash"
	}
}

var (
	_ AttackPicker = FlameTyrant{}
	_ AttackPicker = FrostWarden{}
	_ AttackPicker = StormCaller{}
	_ AttackPicker = GraveMonarch{}
	_ AttackPicker = VoidReaper{}
)

// PickerFor returns the attack picker for a boss id, or nil for unknown
// bosses.
func PickerFor(bossID string) AttackPicker {
	switch bossID {
	case "flame_tyrant":
		return FlameTyrant{}
	case "frost_warden":
		return FrostWarden{}
	case "storm_caller":
		return StormCaller{}
	case "grave_monarch":
		return GraveMonarch{}
	case "void_reaper":
		return VoidReaper{}
	default:
		return nil
	}
}
