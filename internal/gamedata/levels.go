package gamedata

// LevelDef defines a campaign level loaded from JSON.
type LevelDef struct {
	ID         string `json:"id"`               // "world-level" string (e.g., "1-3")
	World      int    `json:"world"`            // World number
	Name       string `json:"name"`             // Display name
	StarScores []int  `json:"starScores"`       // Ascending score thresholds for 1-3 stars
	BossID     string `json:"bossId,omitempty"` // Boss fought at the end, if any
}

// Stars returns how many stars (0-3) the given score earns.
func (l *LevelDef) Stars(score int) int {
	stars := 0
	for _, threshold := range l.StarScores {
		if score >= threshold {
			stars++
		}
	}
	if stars > 3 {
		stars = 3
	}
	return stars
}

// HasBoss returns true if the level ends in a boss fight.
func (l *LevelDef) HasBoss() bool {
	return l.BossID != ""
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// MustLoadLevels loads level definitions, panicking on error.
func MustLoadLevels() []LevelDef {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
