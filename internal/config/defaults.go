package config

import (
	_ "embed"
)

//go:embed defaults/textagons.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/textagons.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Columns:       7,
			Rows:          7,
			TileSize:      64,
			ColumnOverlap: 13,
			RowOverlap:    8,
			HitInset:      4,
			FootprintPad:  4,
		},
		Physics: PhysicsConfig{
			FallAcceleration: 0.35,
			BumpHeight:       8,
			RecycleStep:      32,
		},
		Specials: SpecialsConfig{
			RollSides: 20,
			Crystal: RollTable{
				MinLength:     5,
				CertainLength: 7,
				Targets:       map[int]int{5: 13, 6: 7},
			},
			Fire: RollTable{
				MinLength: 3,
				Targets:   map[int]int{3: 4, 4: 17, 5: 20},
			},
			ScrambleFireChance: 0.8,
		},
		Words: WordsConfig{
			BaseBonusLength: 3,
			BonusMultiplier: 3,
			RarityThresholds: []float64{
				0, 0, 0, 0.16, 0.22, 0.28, 0.36, 0.42, 0.48, 0.55, 0.61, 0.68, 0.74,
			},
		},
		UI: UIConfig{
			FlashFrames:      120,
			FlashToggle:      5,
			FireFlashToggle:  5,
			CurrentWordWidth: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
