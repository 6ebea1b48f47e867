// Package core provides fundamental types and utilities for textagons.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box of terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Point is a position in board units.
// Board units are the continuous coordinate space tiles fall through.
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Box is an axis-aligned rectangle in board units.
// Used for hit-testing text fields, buttons and menus.
type Box struct {
	X, Y float64
	W, H float64
}

// Contains returns true if p lies inside the box (right/bottom edges exclusive).
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// Polygon is a convex polygon given by its vertices in winding order.
type Polygon []Point

// Hexagon returns the flat-topped regular hexagon centred on c.
// Vertex i sits at angle i*60 degrees, matching the board's column stagger.
func Hexagon(c Point, radius float64) Polygon {
	poly := make(Polygon, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		poly[i] = Point{
			X: c.X + radius*math.Cos(a),
			Y: c.Y + radius*math.Sin(a),
		}
	}
	return poly
}

// Contains returns true if p lies inside or on the edge of the polygon.
func (poly Polygon) Contains(p Point) bool {
	if len(poly) < 3 {
		return false
	}
	sign := 0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// Overlaps reports whether two convex polygons share interior area.
// Uses the separating axis theorem; polygons that only touch along an
// edge do not overlap.
func (poly Polygon) Overlaps(other Polygon) bool {
	if len(poly) < 3 || len(other) < 3 {
		return false
	}
	for _, shape := range [2]Polygon{poly, other} {
		for i := range shape {
			edge := shape[(i+1)%len(shape)].Sub(shape[i])
			axis := Point{X: -edge.Y, Y: edge.X}
			minA, maxA := poly.project(axis)
			minB, maxB := other.project(axis)
			if maxA <= minB+epsilon || maxB <= minA+epsilon {
				return false
			}
		}
	}
	return true
}

// epsilon absorbs floating point noise from the hexagon trigonometry.
const epsilon = 1e-9

// project returns the interval covered by the polygon on the given axis.
func (poly Polygon) project(axis Point) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, p := range poly {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
