// Package selection implements the click-driven chain of selected tiles.
package selection

import (
	"slices"
	"strings"

	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// Outcome describes what a click did to the chain.
type Outcome int

const (
	Ignored   Outcome = iota // Nil tile
	Started                  // Empty chain, clicked tile starts a new one
	Extended                 // Clicked a neighbour of the last tile
	Rewound                  // Clicked an earlier tile; later tiles dropped
	Cancelled                // Clicked the only tile again
	Restarted                // Clicked a distant tile; old chain dropped
	Unchanged                // Clicked the last tile of a chain too short to submit
	Submit                   // Clicked the last tile of a submittable chain
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Started:
		return "started"
	case Extended:
		return "extended"
	case Rewound:
		return "rewound"
	case Cancelled:
		return "cancelled"
	case Restarted:
		return "restarted"
	case Unchanged:
		return "unchanged"
	case Submit:
		return "submit"
	default:
		return "unknown"
	}
}

// Adjacency answers whether two tiles are hex neighbours.
type Adjacency interface {
	Adjacent(a, b *tile.Tile) bool
}

// Chain is an ordered path of distinct selected tiles, each adjacent to the
// one before it. The zero value is an empty chain.
type Chain struct {
	tiles []*tile.Tile
}

// Click applies a primary click on t.
// Submit leaves the chain untouched; the caller validates the word and
// then clears the chain.
func (c *Chain) Click(t *tile.Tile, adj Adjacency) Outcome {
	if t == nil {
		return Ignored
	}

	if len(c.tiles) == 0 {
		c.push(t)
		return Started
	}

	if t == c.Last() {
		switch {
		case c.Submittable():
			return Submit
		case len(c.tiles) == 1:
			c.Clear()
			return Cancelled
		default:
			return Unchanged
		}
	}

	if i := slices.Index(c.tiles, t); i >= 0 {
		for _, dropped := range c.tiles[i+1:] {
			dropped.Selected = false
		}
		c.tiles = c.tiles[:i+1]
		return Rewound
	}

	if adj.Adjacent(c.Last(), t) {
		c.push(t)
		return Extended
	}

	c.Clear()
	c.push(t)
	return Restarted
}

func (c *Chain) push(t *tile.Tile) {
	t.Selected = true
	c.tiles = append(c.tiles, t)
}

// Submittable reports whether the chain is long enough to submit: three
// tiles, or two when one of them is the QU digraph.
func (c *Chain) Submittable() bool {
	switch len(c.tiles) {
	case 0, 1:
		return false
	case 2:
		return c.tiles[0].Letter == tile.Digraph || c.tiles[1].Letter == tile.Digraph
	default:
		return true
	}
}

// Clear deselects every tile and empties the chain.
func (c *Chain) Clear() {
	for _, t := range c.tiles {
		t.Selected = false
	}
	c.tiles = c.tiles[:0]
}

// Len returns the number of tiles in the chain.
func (c *Chain) Len() int {
	return len(c.tiles)
}

// Last returns the most recently added tile, or nil.
func (c *Chain) Last() *tile.Tile {
	if len(c.tiles) == 0 {
		return nil
	}
	return c.tiles[len(c.tiles)-1]
}

// Tiles returns a copy of the chain in selection order.
func (c *Chain) Tiles() []*tile.Tile {
	return slices.Clone(c.tiles)
}

// Contains reports whether t is part of the chain.
func (c *Chain) Contains(t *tile.Tile) bool {
	return slices.Contains(c.tiles, t)
}

// Word returns the chain's letters as an uppercase word.
func (c *Chain) Word() string {
	var sb strings.Builder
	for _, t := range c.tiles {
		sb.WriteString(t.Letter)
	}
	return sb.String()
}
