package board

import (
	"slices"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// NoTile is returned by the special tile rolls when nothing is created.
const NoTile = -1

// Resolution records what a submission created.
type Resolution struct {
	CrystalIndex int // Index into the submitted tiles, or NoTile
	FireIndex    int // Index into the submitted tiles, or NoTile
}

// RollCrystal decides whether a word of wordLength letters spawns a crystal
// tile, returning the index among tileCount submitted tiles or NoTile.
func (b *Board) RollCrystal(wordLength, tileCount int) int {
	return b.roll(b.cfg.Specials.Crystal, wordLength, tileCount)
}

// RollFire decides whether a word of wordLength letters spawns a fire tile,
// returning the index among tileCount submitted tiles or NoTile.
func (b *Board) RollFire(wordLength, tileCount int) int {
	return b.roll(b.cfg.Specials.Fire, wordLength, tileCount)
}

func (b *Board) roll(table config.RollTable, wordLength, tileCount int) int {
	if tileCount < 1 {
		return NoTile
	}
	target, ok, certain := table.Target(wordLength)
	if !ok {
		return NoTile
	}
	if !certain && b.rng.Intn(b.cfg.Specials.RollSides)+1 < target {
		return NoTile
	}
	return b.rng.Intn(tileCount)
}

// ResolveSubmission removes an accepted word's tiles from the board.
// Each tile is recycled to the top of its column; at most one becomes a
// crystal or (for short, non-bonus words) a fire tile. Fire tiles whose
// support was just removed, and freshly created fire tiles, are not armed
// this turn.
func (b *Board) ResolveSubmission(selected []*tile.Tile, wordLength int, isBonus bool) Resolution {
	res := Resolution{
		CrystalIndex: b.RollCrystal(wordLength, len(selected)),
		FireIndex:    NoTile,
	}
	if res.CrystalIndex == NoTile && !isBonus {
		res.FireIndex = b.RollFire(wordLength, len(selected))
	}

	var bypassed []*tile.Tile
	for i, t := range selected {
		if up := b.above(t); up != nil && up.Type == tile.Fire {
			bypassed = append(bypassed, up)
		}

		b.recycle(t)

		switch i {
		case res.CrystalIndex:
			t.SetType(tile.Crystal)
		case res.FireIndex:
			t.SetType(tile.Fire)
			bypassed = append(bypassed, t)
		}
	}

	b.RecomputeTargets()
	b.armFireTiles(bypassed)
	return res
}

// recycle moves a tile above its column, stepping further up while it
// overlaps another tile already queued there.
func (b *Board) recycle(t *tile.Tile) {
	t.Recycle(b.rng)
	for b.overlapsColumn(t) {
		t.Y -= b.cfg.Physics.RecycleStep
	}
}

// overlapsColumn reports whether t's bounding square overlaps another tile
// of its column.
func (b *Board) overlapsColumn(t *tile.Tile) bool {
	size := t.Geometry().Size
	for _, other := range b.tiles {
		if other == t || other.Column != t.Column {
			continue
		}
		if other.Y < t.Y+size && t.Y < other.Y+size {
			return true
		}
	}
	return false
}

// WillBurnDown reports whether a fire tile should be armed: it must not be
// selected, and the tile below it must be Normal. A fire tile with nothing
// below it is always eligible, which is how the game ends.
func (b *Board) WillBurnDown(t *tile.Tile) bool {
	if t.Type != tile.Fire || t.Selected {
		return false
	}
	below := b.below(t)
	if below == nil {
		return true
	}
	return below.Type == tile.Normal
}

// armFireTiles re-arms every eligible fire tile not in bypassed.
func (b *Board) armFireTiles(bypassed []*tile.Tile) {
	for _, t := range b.FireTiles() {
		if slices.Contains(bypassed, t) {
			continue
		}
		if b.WillBurnDown(t) {
			t.BurnReady = true
		}
	}
}

// BurnDown consumes the tile below an armed fire tile.
// Returns true when there is nothing below, which ends the game.
func (b *Board) BurnDown(t *tile.Tile) bool {
	t.BurnReady = false
	below := b.below(t)
	if below == nil {
		return true
	}
	b.recycle(below)
	return false
}

// Update advances the board one frame and reports game over.
func (b *Board) Update() bool {
	gameOver := false

	b.RecomputeTargets()

	for _, t := range b.FireTiles() {
		t.Urgent = b.below(t) == nil && t.AtTarget()
		if t.AtTarget() && t.BurnReady {
			if b.BurnDown(t) {
				gameOver = true
			}
		}
	}

	accel := b.cfg.Physics.FallAcceleration
	toggle := b.cfg.UI.FireFlashToggle
	for _, t := range b.tiles {
		t.AdvanceTowardTarget(accel)
		t.UpdateFlash(toggle)
	}
	return gameOver
}

// ScrambleAll re-rolls every letter and, with the configured chance, turns a
// random Normal top-row tile into fire. The new fire tile, if any, is
// returned and is not armed this turn.
func (b *Board) ScrambleAll() *tile.Tile {
	for _, t := range b.BottomRow() {
		t.Y -= b.cfg.Physics.BumpHeight
	}

	for _, t := range b.tiles {
		t.Scramble(b.rng)
	}

	var created *tile.Tile
	var bypassed []*tile.Tile
	if b.rng.Float64() < b.cfg.Specials.ScrambleFireChance {
		var candidates []*tile.Tile
		for _, t := range b.TopRow() {
			if t.Type == tile.Normal {
				candidates = append(candidates, t)
			}
		}
		if len(candidates) > 0 {
			created = candidates[b.rng.Intn(len(candidates))]
			created.SetType(tile.Fire)
			bypassed = append(bypassed, created)
		}
	}

	b.armFireTiles(bypassed)
	return created
}

// Reset returns every tile to a fresh Normal state and scrambles the board.
func (b *Board) Reset() *tile.Tile {
	for _, t := range b.tiles {
		t.SetType(tile.Normal)
		t.Marked = false
	}
	return b.ScrambleAll()
}
