// Package config provides YAML-based game configuration loading and
// validation for textagons.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of a game.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Specials SpecialsConfig `yaml:"specials"`
	Words    WordsConfig    `yaml:"words"`
	UI       UIConfig       `yaml:"ui"`
}

// BoardConfig defines the hex grid geometry in board units.
type BoardConfig struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	TileSize      float64 `yaml:"tile_size"`
	ColumnOverlap float64 `yaml:"column_overlap"` // Horizontal interlock between columns
	RowOverlap    float64 `yaml:"row_overlap"`    // Vertical overlap of stacked tiles
	HitInset      float64 `yaml:"hit_inset"`      // Drawn hexagon radius = size/2 - inset
	FootprintPad  float64 `yaml:"footprint_pad"`  // Adjacency hexagon radius = size/2 + pad
}

// RowStride returns the vertical distance between resting tiles of a column.
func (b BoardConfig) RowStride() float64 {
	return b.TileSize - b.RowOverlap
}

// ColumnStride returns the horizontal distance between neighbouring columns.
func (b BoardConfig) ColumnStride() float64 {
	return b.TileSize - b.ColumnOverlap
}

// PhysicsConfig defines the falling animation.
type PhysicsConfig struct {
	FallAcceleration float64 `yaml:"fall_acceleration"` // Added to fall speed each frame
	BumpHeight       float64 `yaml:"bump_height"`       // Scramble bump of the bottom row
	RecycleStep      float64 `yaml:"recycle_step"`      // Spacing of recycled tiles queued above a column
}

// SpecialsConfig defines special tile creation odds.
type SpecialsConfig struct {
	RollSides          int       `yaml:"roll_sides"`
	Crystal            RollTable `yaml:"crystal"`
	Fire               RollTable `yaml:"fire"`
	ScrambleFireChance float64   `yaml:"scramble_fire_chance"`
}

// WordsConfig defines scoring and bonus word selection.
type WordsConfig struct {
	BaseBonusLength  int       `yaml:"base_bonus_length"`
	BonusMultiplier  int       `yaml:"bonus_multiplier"`
	RarityThresholds []float64 `yaml:"rarity_thresholds"` // Indexed by word length
}

// MaxBonusLength returns the longest bonus word length with a configured threshold.
func (w WordsConfig) MaxBonusLength() int {
	return len(w.RarityThresholds) - 1
}

// UIConfig defines text field timing and sizes.
type UIConfig struct {
	FlashFrames      int `yaml:"flash_frames"`       // Length of a text flash
	FlashToggle      int `yaml:"flash_toggle"`       // Frames between flash color swaps
	FireFlashToggle  int `yaml:"fire_flash_toggle"`  // Frames between urgent fire color swaps
	CurrentWordWidth int `yaml:"current_word_width"` // Longest current word shown untruncated
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error

	b := c.Board
	if b.Columns < 1 {
		errs = append(errs, fmt.Errorf("board.columns must be positive, got %d", b.Columns))
	}
	if b.Rows < 2 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 2, got %d", b.Rows))
	}
	if b.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %g", b.TileSize))
	}
	if b.RowStride() <= 0 || b.ColumnStride() <= 0 {
		errs = append(errs, errors.New("board overlaps must be smaller than tile_size"))
	}
	if b.HitInset < 0 || b.HitInset >= b.TileSize/2 {
		errs = append(errs, fmt.Errorf("board.hit_inset must be in [0, tile_size/2), got %g", b.HitInset))
	}

	if c.Physics.FallAcceleration <= 0 {
		errs = append(errs, fmt.Errorf("physics.fall_acceleration must be positive, got %g", c.Physics.FallAcceleration))
	}
	if c.Physics.RecycleStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.recycle_step must be positive, got %g", c.Physics.RecycleStep))
	}

	s := c.Specials
	if s.RollSides < 1 {
		errs = append(errs, fmt.Errorf("specials.roll_sides must be positive, got %d", s.RollSides))
	}
	if err := s.Crystal.validate("specials.crystal", s.RollSides); err != nil {
		errs = append(errs, err)
	}
	if err := s.Fire.validate("specials.fire", s.RollSides); err != nil {
		errs = append(errs, err)
	}
	if s.ScrambleFireChance < 0 || s.ScrambleFireChance > 1 {
		errs = append(errs, fmt.Errorf("specials.scramble_fire_chance must be in [0, 1], got %g", s.ScrambleFireChance))
	}

	w := c.Words
	if w.BaseBonusLength < 2 {
		errs = append(errs, fmt.Errorf("words.base_bonus_length must be at least 2, got %d", w.BaseBonusLength))
	}
	if w.MaxBonusLength() < w.BaseBonusLength {
		errs = append(errs, fmt.Errorf("words.rarity_thresholds must reach length %d", w.BaseBonusLength))
	}
	if w.BonusMultiplier < 1 {
		errs = append(errs, fmt.Errorf("words.bonus_multiplier must be positive, got %d", w.BonusMultiplier))
	}

	if c.UI.FlashFrames < 1 || c.UI.FlashToggle < 1 || c.UI.FireFlashToggle < 1 {
		errs = append(errs, errors.New("ui flash timings must be positive"))
	}
	if c.UI.CurrentWordWidth < 7 {
		errs = append(errs, fmt.Errorf("ui.current_word_width must be at least 7, got %d", c.UI.CurrentWordWidth))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
