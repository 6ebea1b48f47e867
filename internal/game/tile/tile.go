// Package tile implements a single hexagonal letter cell: its letter and
// value, special type, falling animation and hex geometry.
package tile

import (
	"math/rand"

	"github.com/shadowFAQs/textagons/internal/core"
)

// Type is the special kind of a tile.
type Type int

const (
	Normal  Type = iota
	Fire         // Scores nothing and burns through the tile below it
	Crystal      // Scores double
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Normal:
		return "normal"
	case Fire:
		return "fire"
	case Crystal:
		return "crystal"
	default:
		return "unknown"
	}
}

// Multiplier returns the value multiplier of the type.
func (t Type) Multiplier() int {
	switch t {
	case Fire:
		return 0
	case Crystal:
		return 2
	default:
		return 1
	}
}

// Geometry describes the size of a tile and its two hexagons.
type Geometry struct {
	Size            float64 // Bounding square edge
	HitRadius       float64 // Radius of the drawn hexagon, used for clicks
	FootprintRadius float64 // Radius of the adjacency hexagon
}

// Tile is one hex cell of the board.
// Tiles live in a fixed arena and are recycled rather than reallocated.
type Tile struct {
	Letter string
	Value  int
	Type   Type

	// Column and Slot identify the arena slot; Slot is not the visual row.
	Column int
	Slot   int

	// X, Y is the top-left of the bounding square in board units.
	X, Y    float64
	TargetY float64

	Selected  bool
	Marked    bool
	BurnReady bool // Fire only: consumes the tile below on the next settled update
	Urgent    bool // Fire only: resting on the floor, one burn from game over
	FlashOn   bool // Urgent fire tiles alternate color while this toggles

	geo        Geometry
	speed      float64
	flashTimer int
}

// New creates a Normal tile at rest at (x, y) with a random letter.
func New(column, slot int, x, y float64, geo Geometry, rng *rand.Rand) *Tile {
	t := &Tile{
		Column:  column,
		Slot:    slot,
		X:       x,
		Y:       y,
		TargetY: y,
		geo:     geo,
	}
	t.ChooseLetter(rng)
	return t
}

// Geometry returns the tile's size parameters.
func (t *Tile) Geometry() Geometry {
	return t.geo
}

// ChooseLetter re-rolls the letter and updates the value.
func (t *Tile) ChooseLetter(rng *rand.Rand) {
	t.SetLetter(ChooseLetter(rng))
}

// SetLetter assigns a letter and updates the value.
func (t *Tile) SetLetter(letter string) {
	t.Letter = letter
	t.Value = ValueForLetter(letter, t.Type)
}

// SetType changes the tile type and rescales its value.
func (t *Tile) SetType(tt Type) {
	t.Type = tt
	t.Value = ValueForLetter(t.Letter, tt)
	if tt != Fire {
		t.BurnReady = false
		t.Urgent = false
		t.FlashOn = false
		t.flashTimer = 0
	}
}

// AtTarget reports whether the tile has finished falling.
func (t *Tile) AtTarget() bool {
	return t.Y == t.TargetY
}

// AdvanceTowardTarget moves the tile one frame toward its target.
// Falling speed grows by accel each frame; the tile lands exactly on the target.
func (t *Tile) AdvanceTowardTarget(accel float64) {
	if t.Y < t.TargetY {
		t.speed += accel
		t.Y += t.speed
	}
	if t.Y >= t.TargetY {
		t.speed = 0
		t.Y = t.TargetY
	}
}

// Recycle moves the tile just above the top of the board and resets it to a
// fresh Normal tile with a new letter.
func (t *Tile) Recycle(rng *rand.Rand) {
	t.Y = -t.geo.Size
	t.speed = 0
	t.SetType(Normal)
	t.Scramble(rng)
}

// Scramble clears selection and marks and re-rolls the letter.
// Fire tiles keep their letter; crystal tiles revert to Normal.
func (t *Tile) Scramble(rng *rand.Rand) {
	t.Selected = false
	t.Marked = false
	if t.Type != Fire {
		t.ChooseLetter(rng)
	}
	if t.Type == Crystal {
		t.SetType(Normal)
	}
}

// ToggleMark flips the player's mark. Selected tiles cannot be marked.
func (t *Tile) ToggleMark() {
	if !t.Selected {
		t.Marked = !t.Marked
	}
}

// UpdateFlash advances the urgent fire flash; toggle is the number of frames
// between color swaps.
func (t *Tile) UpdateFlash(toggle int) {
	if t.Type != Fire || !t.Urgent {
		t.flashTimer = 0
		t.FlashOn = false
		return
	}
	t.flashTimer++
	if t.flashTimer >= toggle {
		t.flashTimer = 0
		t.FlashOn = !t.FlashOn
	}
}

// Center returns the centre of the tile in board units.
func (t *Tile) Center() core.Point {
	return core.Point{X: t.X + t.geo.Size/2, Y: t.Y + t.geo.Size/2}
}

// Outline returns the drawn hexagon.
func (t *Tile) Outline() core.Polygon {
	return core.Hexagon(t.Center(), t.geo.HitRadius)
}

// Footprint returns the hexagon used for adjacency.
// It is slightly larger than the cell so touching neighbours overlap.
func (t *Tile) Footprint() core.Polygon {
	return core.Hexagon(t.Center(), t.geo.FootprintRadius)
}

// HitTest reports whether a point lies on the drawn hexagon.
func (t *Tile) HitTest(p core.Point) bool {
	return t.Outline().Contains(p)
}

// Display returns the letter as shown on the tile.
func (t *Tile) Display() string {
	if t.Letter == Digraph {
		return "Qu"
	}
	return t.Letter
}

// TextColor returns the letter color for the tile type.
func (t *Tile) TextColor() core.Color {
	switch t.Type {
	case Fire:
		if t.FlashOn {
			return core.ColorYellow
		}
		return core.ColorRed
	case Crystal:
		return core.ColorTeal
	default:
		return core.ColorLightGray
	}
}

// BorderColor returns the outline color: selection wins over marks, marks over type.
func (t *Tile) BorderColor() core.Color {
	switch {
	case t.Selected:
		return core.ColorGreen
	case t.Marked:
		return core.ColorYellow
	case t.Type == Crystal:
		return core.ColorTeal
	default:
		return core.ColorLightGray
	}
}
