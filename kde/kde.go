// Package kde builds Gaussian kernel density estimates over planar point
// collections and samples them on regular grids.
package kde

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/petrolab/terncontour/ternary"
)

const (
	// DefaultBandwidthScale doubles the rule-of-thumb bandwidth. The extra
	// smoothing avoids fragmented contours on sparse compositional data.
	DefaultBandwidthScale = 2.0

	// DefaultGridResolution is the number of density samples per axis.
	DefaultGridResolution = 400
)

// ErrInsufficientData reports a point collection too degenerate to support a
// kernel density estimate.
var ErrInsufficientData = errors.New("insufficient data for density estimate")

// Surface is a Gaussian kernel density estimate over a set of planar points.
// It is immutable once built and safe for concurrent evaluation.
type Surface struct {
	xs, ys []float64
	hx, hy float64
	norm   float64

	minX, maxX float64
	minY, maxY float64
}

// Build constructs a density surface from the given points. The per-axis
// bandwidth is Scott's rule of thumb (sample deviation times n^(-1/6) for two
// dimensions) multiplied by bandwidthScale; a non-positive scale selects
// DefaultBandwidthScale.
//
// Build returns ErrInsufficientData when fewer than two distinct points are
// supplied, or when all points share a coordinate along one axis (zero
// spread leaves the kernel undefined there).
func Build(points []ternary.XY, bandwidthScale float64) (*Surface, error) {
	if bandwidthScale <= 0 {
		bandwidthScale = DefaultBandwidthScale
	}

	distinct := make(map[ternary.XY]struct{}, len(points))
	for _, p := range points {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct points, have %d", ErrInsufficientData, len(distinct))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	sigmaX := stat.StdDev(xs, nil)
	sigmaY := stat.StdDev(ys, nil)
	if sigmaX == 0 || sigmaY == 0 {
		return nil, fmt.Errorf("%w: zero spread along one axis", ErrInsufficientData)
	}

	n := float64(len(points))
	factor := math.Pow(n, -1.0/6.0) * bandwidthScale
	hx := sigmaX * factor
	hy := sigmaY * factor

	return &Surface{
		xs:   xs,
		ys:   ys,
		hx:   hx,
		hy:   hy,
		norm: 1 / (n * 2 * math.Pi * hx * hy),
		minX: floats.Min(xs),
		maxX: floats.Max(xs),
		minY: floats.Min(ys),
		maxY: floats.Max(ys),
	}, nil
}

// At evaluates the density at a single planar location.
func (s *Surface) At(x, y float64) float64 {
	var sum float64
	for i := range s.xs {
		dx := (x - s.xs[i]) / s.hx
		dy := (y - s.ys[i]) / s.hy
		sum += math.Exp(-0.5 * (dx*dx + dy*dy))
	}
	return sum * s.norm
}

// Bandwidths returns the scaled per-axis kernel bandwidths.
func (s *Surface) Bandwidths() (hx, hy float64) {
	return s.hx, s.hy
}

// Bounds returns the bounding box of the input points.
func (s *Surface) Bounds() (minX, minY, maxX, maxY float64) {
	return s.minX, s.minY, s.maxX, s.maxY
}

// GridAxes returns evaluation axes spanning the observed point bounds with no
// padding. A resolution below two selects DefaultGridResolution.
func (s *Surface) GridAxes(resolution int) (gridX, gridY []float64) {
	if resolution < 2 {
		resolution = DefaultGridResolution
	}
	gridX = floats.Span(make([]float64, resolution), s.minX, s.maxX)
	gridY = floats.Span(make([]float64, resolution), s.minY, s.maxY)
	return gridX, gridY
}

// Evaluate samples the surface on the Cartesian product of the two axes.
// The result is row-major: grid[i][j] is the density at (gridX[j], gridY[i]).
// Rows are evaluated in parallel, but each output slot is owned by exactly
// one worker, so the returned grid is deterministic.
func (s *Surface) Evaluate(gridX, gridY []float64) [][]float64 {
	grid := make([][]float64, len(gridY))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(gridY) {
		workers = len(gridY)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(gridY); i += workers {
				row := make([]float64, len(gridX))
				for j, x := range gridX {
					row[j] = s.At(x, gridY[i])
				}
				grid[i] = row
			}
		}(w)
	}
	wg.Wait()

	return grid
}
