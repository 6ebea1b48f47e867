// Package board implements the hex tile board: adjacency, per-column gravity,
// special tile rolls, fire burn-down and game over detection.
package board

import (
	"math/rand"
	"sort"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// Board owns a fixed arena of columns x rows tiles.
// Tiles are recycled in place; the arena never grows or shrinks.
type Board struct {
	cfg   config.Config
	rng   *rand.Rand
	tiles []*tile.Tile
}

// New lays out a full board at rest.
func New(cfg config.Config, rng *rand.Rand) *Board {
	bc := cfg.Board
	geo := tile.Geometry{
		Size:            bc.TileSize,
		HitRadius:       bc.TileSize/2 - bc.HitInset,
		FootprintRadius: bc.TileSize/2 + bc.FootprintPad,
	}

	b := &Board{
		cfg:   cfg,
		rng:   rng,
		tiles: make([]*tile.Tile, 0, bc.Columns*bc.Rows),
	}
	for c := 0; c < bc.Columns; c++ {
		x := float64(c) * bc.ColumnStride()
		for r := 0; r < bc.Rows; r++ {
			y := float64(r)*bc.RowStride() + b.parityOffset(c)
			b.tiles = append(b.tiles, tile.New(c, r, x, y, geo, rng))
		}
	}
	return b
}

// parityOffset staggers odd columns half a tile down so columns interlock.
func (b *Board) parityOffset(column int) float64 {
	if column%2 == 1 {
		return b.cfg.Board.TileSize/2 - 6
	}
	return -2
}

// floorTarget returns the resting Y of the lowest tile of a column.
func (b *Board) floorTarget(column int) float64 {
	return float64(b.cfg.Board.Rows-1)*b.cfg.Board.RowStride() + b.parityOffset(column)
}

// Width returns the board width in board units.
func (b *Board) Width() float64 {
	return float64(b.cfg.Board.Columns-1)*b.cfg.Board.ColumnStride() + b.cfg.Board.TileSize
}

// Height returns the board height in board units.
func (b *Board) Height() float64 {
	return b.floorTarget(1) + b.cfg.Board.TileSize
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.cfg.Board.Columns
}

// Tiles returns every tile in arena order (column-major).
func (b *Board) Tiles() []*tile.Tile {
	return b.tiles
}

// Slot returns the tile stored at an arena slot.
func (b *Board) Slot(column, slot int) *tile.Tile {
	if column < 0 || column >= b.cfg.Board.Columns || slot < 0 || slot >= b.cfg.Board.Rows {
		return nil
	}
	return b.tiles[column*b.cfg.Board.Rows+slot]
}

// TileAt returns the tile whose drawn hexagon contains p, or nil.
func (b *Board) TileAt(p core.Point) *tile.Tile {
	for _, t := range b.tiles {
		if t.HitTest(p) {
			return t
		}
	}
	return nil
}

// ColumnTiles returns the tiles of a column from top to bottom.
func (b *Board) ColumnTiles(column int) []*tile.Tile {
	var out []*tile.Tile
	for _, t := range b.tiles {
		if t.Column == column {
			out = append(out, t)
		}
	}
	sortByY(out)
	return out
}

// sortByY orders tiles top to bottom; arena slot breaks ties.
func sortByY(tiles []*tile.Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].Slot < tiles[j].Slot
	})
}

// Adjacent reports whether two distinct tiles' footprints overlap.
func (b *Board) Adjacent(a, c *tile.Tile) bool {
	if a == nil || c == nil || a == c {
		return false
	}
	return a.Footprint().Overlaps(c.Footprint())
}

// Neighbors returns every tile adjacent to t, in arena order.
func (b *Board) Neighbors(t *tile.Tile) []*tile.Tile {
	var out []*tile.Tile
	for _, other := range b.tiles {
		if b.Adjacent(t, other) {
			out = append(out, other)
		}
	}
	return out
}

// TilesAbove returns the tiles higher up in t's column, nearest first.
func (b *Board) TilesAbove(t *tile.Tile) []*tile.Tile {
	var out []*tile.Tile
	for _, other := range b.tiles {
		if other.Column == t.Column && other.Y < t.Y {
			out = append(out, other)
		}
	}
	sortByY(out)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// TilesBelow returns the tiles lower down in t's column, nearest first.
func (b *Board) TilesBelow(t *tile.Tile) []*tile.Tile {
	var out []*tile.Tile
	for _, other := range b.tiles {
		if other.Column == t.Column && other.Y > t.Y {
			out = append(out, other)
		}
	}
	sortByY(out)
	return out
}

// below returns the tile directly under t, or nil.
func (b *Board) below(t *tile.Tile) *tile.Tile {
	var nearest *tile.Tile
	for _, other := range b.tiles {
		if other.Column == t.Column && other.Y > t.Y && (nearest == nil || other.Y < nearest.Y) {
			nearest = other
		}
	}
	return nearest
}

// above returns the tile directly over t, or nil.
func (b *Board) above(t *tile.Tile) *tile.Tile {
	var nearest *tile.Tile
	for _, other := range b.tiles {
		if other.Column == t.Column && other.Y < t.Y && (nearest == nil || other.Y > nearest.Y) {
			nearest = other
		}
	}
	return nearest
}

// TopRow returns the highest tile of every column.
func (b *Board) TopRow() []*tile.Tile {
	var out []*tile.Tile
	for _, t := range b.tiles {
		if b.above(t) == nil {
			out = append(out, t)
		}
	}
	return out
}

// BottomRow returns the lowest tile of every column.
func (b *Board) BottomRow() []*tile.Tile {
	var out []*tile.Tile
	for _, t := range b.tiles {
		if b.below(t) == nil {
			out = append(out, t)
		}
	}
	return out
}

// FireTiles returns every fire tile.
func (b *Board) FireTiles() []*tile.Tile {
	var out []*tile.Tile
	for _, t := range b.tiles {
		if t.Type == tile.Fire {
			out = append(out, t)
		}
	}
	return out
}

// Selected returns every selected tile in arena order.
func (b *Board) Selected() []*tile.Tile {
	var out []*tile.Tile
	for _, t := range b.tiles {
		if t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// Settled reports whether every tile has reached its fall target.
// Tile input is ignored until it does.
func (b *Board) Settled() bool {
	for _, t := range b.tiles {
		if !t.AtTarget() {
			return false
		}
	}
	return true
}

// RecomputeTargets assigns fall targets column by column from the floor up,
// so every column rests gapless with one tile per target.
func (b *Board) RecomputeTargets() {
	stride := b.cfg.Board.RowStride()
	for c := 0; c < b.cfg.Board.Columns; c++ {
		column := b.ColumnTiles(c)
		target := b.floorTarget(c)
		for i := len(column) - 1; i >= 0; i-- {
			column[i].TargetY = target
			target -= stride
		}
	}
}

// Deselect clears the selection flag of every tile.
func (b *Board) Deselect() {
	for _, t := range b.tiles {
		t.Selected = false
	}
}

// Unmark clears every player mark.
func (b *Board) Unmark() {
	for _, t := range b.tiles {
		t.Marked = false
	}
}
