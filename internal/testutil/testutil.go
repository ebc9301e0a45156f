// Package testutil provides shared fixtures for the contour pipeline tests:
// deterministic ternary point clusters and small synthetic density grids.
package testutil

import (
	"math"
	"math/rand"

	"github.com/petrolab/terncontour/ternary"
)

// TernaryCluster returns n compositions scattered around centre with the
// given per-component spread. The generator is seeded, so fixtures are
// reproducible across runs. Components are clamped at zero to stay inside
// the valid input range.
func TernaryCluster(seed int64, n int, centre ternary.Point, spread float64) []ternary.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]ternary.Point, n)
	for i := range points {
		points[i] = ternary.Point{
			A: math.Max(0, centre.A+rng.NormFloat64()*spread),
			B: math.Max(0, centre.B+rng.NormFloat64()*spread),
			C: math.Max(0, centre.C+rng.NormFloat64()*spread),
		}
	}
	return points
}

// GaussianBumpGrid returns a size-by-size density grid over [0,1]^2 with a
// single smooth peak at the centre, along with its axes. The grid is
// row-major: grid[i][j] holds the value at (gridX[j], gridY[i]).
func GaussianBumpGrid(size int) (gridX, gridY []float64, grid [][]float64) {
	gridX = make([]float64, size)
	gridY = make([]float64, size)
	for k := 0; k < size; k++ {
		gridX[k] = float64(k) / float64(size-1)
		gridY[k] = float64(k) / float64(size-1)
	}
	grid = make([][]float64, size)
	for i := range grid {
		row := make([]float64, size)
		for j := range row {
			dx := gridX[j] - 0.5
			dy := gridY[i] - 0.5
			row[j] = math.Exp(-(dx*dx + dy*dy) / 0.02)
		}
		grid[i] = row
	}
	return gridX, gridY, grid
}
