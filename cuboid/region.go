// Package cuboid maintains an exact decomposition of 3-D integer space into
// disjoint axis-aligned cuboids.
package cuboid

import (
	"fmt"
)

// Span is an inclusive integer interval [Min, Max].
type Span struct {
	Min, Max int64
}

// Len returns the number of integers in s.
func (s Span) Len() int64 {
	return s.Max - s.Min + 1
}

func (s Span) intersect(o Span) (r Span, ok bool) {
	r.Min, r.Max = max64(s.Min, o.Min), min64(s.Max, o.Max)
	return r, r.Min <= r.Max
}

// Region is an axis-aligned cuboid of unit cubes.
//
// Every span of a Region satisfies Min <= Max. Regions are values; nothing
// in this package modifies one after it is built.
type Region struct {
	X, Y, Z Span
}

// NewRegion builds a Region from six inclusive bounds.
func NewRegion(xMin, xMax, yMin, yMax, zMin, zMax int64) Region {
	return Region{
		X: Span{xMin, xMax},
		Y: Span{yMin, yMax},
		Z: Span{zMin, zMax},
	}
}

// Volume returns the number of unit cubes in r.
func (r Region) Volume() int64 {
	return r.X.Len() * r.Y.Len() * r.Z.Len()
}

// Contains reports whether the unit cube at (x, y, z) lies in r.
func (r Region) Contains(x, y, z int64) bool {
	return r.X.Min <= x && x <= r.X.Max &&
		r.Y.Min <= y && y <= r.Y.Max &&
		r.Z.Min <= z && z <= r.Z.Max
}

// Overlaps reports whether r and o share at least one unit cube.
func (r Region) Overlaps(o Region) bool {
	_, ok := Intersect(r, o)
	return ok
}

func (r Region) String() string {
	return fmt.Sprintf("x=%d..%d,y=%d..%d,z=%d..%d",
		r.X.Min, r.X.Max, r.Y.Min, r.Y.Max, r.Z.Min, r.Z.Max)
}

// Intersect returns the region shared by a and b. The second result is
// false if they do not overlap.
func Intersect(a, b Region) (Region, bool) {
	x, okx := a.X.intersect(b.X)
	y, oky := a.Y.intersect(b.Y)
	z, okz := a.Z.intersect(b.Z)
	if !okx || !oky || !okz {
		return Region{}, false
	}
	return Region{x, y, z}, true
}

// Subtract returns the parts of r outside o as disjoint regions.
// If r and o do not overlap, the result is r alone; if o covers r, the
// result is empty.
func (r Region) Subtract(o Region) []Region {
	return r.SubtractAppend(nil, o)
}

// SubtractAppend is like Subtract but appends the pieces to dst and returns
// the extended slice.
//
// Pieces are cut axis by axis, each cut narrowed to the overlap on the axes
// already cut. Only non-empty slabs are emitted, at most six.
func (r Region) SubtractAppend(dst []Region, o Region) []Region {
	c, ok := Intersect(r, o)
	if !ok {
		return append(dst, r)
	}

	if c.X.Min > r.X.Min {
		dst = append(dst, Region{Span{r.X.Min, c.X.Min - 1}, r.Y, r.Z})
	}
	if c.X.Max < r.X.Max {
		dst = append(dst, Region{Span{c.X.Max + 1, r.X.Max}, r.Y, r.Z})
	}

	if c.Y.Min > r.Y.Min {
		dst = append(dst, Region{c.X, Span{r.Y.Min, c.Y.Min - 1}, r.Z})
	}
	if c.Y.Max < r.Y.Max {
		dst = append(dst, Region{c.X, Span{c.Y.Max + 1, r.Y.Max}, r.Z})
	}

	if c.Z.Min > r.Z.Min {
		dst = append(dst, Region{c.X, c.Y, Span{r.Z.Min, c.Z.Min - 1}})
	}
	if c.Z.Max < r.Z.Max {
		dst = append(dst, Region{c.X, c.Y, Span{c.Z.Max + 1, r.Z.Max}})
	}

	return dst
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
