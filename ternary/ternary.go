// Package ternary maps barycentric ternary coordinates to planar Cartesian
// coordinates and back.
//
// A ternary point is a three-part composition (a, b, c) with non-negative
// components. The forward transform normalises the components by their sum and
// projects onto the standard equilateral triangle with vertices at (0,0),
// (1,0) and (0.5, √3/2). The inverse is algebraically exact, so the pair is a
// bijection on the open simplex.
package ternary

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateInput reports a ternary point whose component sum is zero, so
// it cannot be normalised onto the simplex.
var ErrDegenerateInput = errors.New("degenerate ternary point: component sum is zero")

// Point is a composition in barycentric ternary coordinates. Components are
// non-negative and need not sum to one; transforms normalise on the fly.
type Point struct {
	A, B, C float64
}

// XY is a point in the unit-simplex projection plane.
type XY struct {
	X, Y float64
}

var sqrt3over2 = math.Sqrt(3) / 2

// ToPlanar projects a ternary point onto the equilateral-triangle plane.
// The components are normalised by their sum first, so (2, 2, 2) and
// (1/3, 1/3, 1/3) project to the same location.
func ToPlanar(p Point) (XY, error) {
	sum := p.A + p.B + p.C
	if sum == 0 {
		return XY{}, fmt.Errorf("%w: (%g, %g, %g)", ErrDegenerateInput, p.A, p.B, p.C)
	}
	b := p.B / sum
	c := p.C / sum
	return XY{
		X: (2*b + c) / 2,
		Y: sqrt3over2 * c,
	}, nil
}

// ToTernary is the exact inverse of ToPlanar. It is defined for every finite
// planar point; results for points outside the triangle carry components
// outside [0, 1], and callers that need strict simplex membership should
// check with InSimplex.
func ToTernary(q XY) Point {
	c := 2 * q.Y / math.Sqrt(3)
	b := q.X - c/2
	return Point{A: 1 - b - c, B: b, C: c}
}

// InSimplex reports whether every component lies in [0-tol, 1+tol].
func (p Point) InSimplex(tol float64) bool {
	for _, v := range [3]float64{p.A, p.B, p.C} {
		if v < -tol || v > 1+tol {
			return false
		}
	}
	return true
}

// PointsToPlanar projects a whole collection, preserving input order so that
// downstream consumers can relate planar points back to their ternary source.
func PointsToPlanar(points []Point) ([]XY, error) {
	out := make([]XY, len(points))
	for i, p := range points {
		q, err := ToPlanar(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = q
	}
	return out, nil
}

// PathToTernary maps a planar polyline back into ternary coordinates,
// preserving order.
func PathToTernary(path []XY) []Point {
	out := make([]Point, len(path))
	for i, q := range path {
		out[i] = ToTernary(q)
	}
	return out
}
