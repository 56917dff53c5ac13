package save

import (
	"encoding/json"
	"fmt"
)

// Import validation is a whitelist: every known top-level field has a
// type checker, and any key outside the whitelist rejects the whole
// import. The original enforced this to keep hostile JSON (prototype
// pollution, shape attacks) out of the save store; the same posture
// guards external payloads here.

type fieldChecker func(json.RawMessage) bool

var importWhitelist = map[string]fieldChecker{
	"version":         isInt,
	"playerName":      isString,
	"souls":           isInt,
	"unlockedWeapons": isStringSlice,
	"weaponTiers":     isStringIntMap,
	"equippedWeapon":  isString,
	"upgrades":        isStringIntMap,
	"completedLevels": isStringSlice,
	"levelStars":      isStringIntMap,
	"highScores":      isStringIntMap,
	"personalBests":   isStringIntMap,
	"createdAt":       isString,
	"updatedAt":       isString,
}

func isString(raw json.RawMessage) bool {
	var v string
	return json.Unmarshal(raw, &v) == nil
}

func isInt(raw json.RawMessage) bool {
	var v int
	return json.Unmarshal(raw, &v) == nil
}

func isStringSlice(raw json.RawMessage) bool {
	var v []string
	return json.Unmarshal(raw, &v) == nil
}

func isStringIntMap(raw json.RawMessage) bool {
	var v map[string]int
	return json.Unmarshal(raw, &v) == nil
}

// validateImport checks an external save payload against the whitelist
// and, if it passes, returns the payload merged over a defaulted record.
func validateImport(raw []byte, defaults *Data) (*Data, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("save import is not a JSON object: %w", err)
	}

	for key, value := range fields {
		checker, known := importWhitelist[key]
		if !known {
			return nil, fmt.Errorf("save import contains unknown field %q", key)
		}
		if !checker(value) {
			return nil, fmt.Errorf("save import field %q has the wrong type", key)
		}
	}

	// Merge over defaults: fields present in the payload overwrite.
	merged := *defaults
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, fmt.Errorf("failed to apply save import: %w", err)
	}

	if merged.Souls < 0 {
		return nil, fmt.Errorf("save import has negative souls balance %d", merged.Souls)
	}
	for id, stars := range merged.LevelStars {
		if stars < 0 || stars > MaxStars {
			return nil, fmt.Errorf("save import has invalid star rating %d for level %q", stars, id)
		}
	}

	return &merged, nil
}
