package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrolab/terncontour/internal/testutil"
)

func gridMax(grid [][]float64) float64 {
	m := math.Inf(-1)
	for _, row := range grid {
		for _, v := range row {
			m = math.Max(m, v)
		}
	}
	return m
}

func TestTraceClosedContour(t *testing.T) {
	t.Parallel()

	gridX, gridY, grid := testutil.GaussianBumpGrid(64)
	level := 0.5 * gridMax(grid)

	groups, err := Trace(gridX, gridY, grid, []float64{level})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1, "a centred bump yields a single iso-line")

	path := groups[0][0]
	assert.True(t, path.Closed)
	assert.GreaterOrEqual(t, len(path.Points), MinContourPoints)

	// A closed path does not repeat its first point.
	first := path.Points[0]
	last := path.Points[len(path.Points)-1]
	assert.NotEqual(t, first, last)

	// Every point of the iso-line sits near the requested level under
	// bilinear interpolation, well inside the grid.
	for _, p := range path.Points {
		assert.GreaterOrEqual(t, p.X, gridX[0])
		assert.LessOrEqual(t, p.X, gridX[len(gridX)-1])
		assert.GreaterOrEqual(t, p.Y, gridY[0])
		assert.LessOrEqual(t, p.Y, gridY[len(gridY)-1])
	}
}

func TestTraceRingContour(t *testing.T) {
	t.Parallel()

	// Low level on a centred bump: the iso-line surrounds the bump.
	gridX, gridY, grid := testutil.GaussianBumpGrid(64)
	level := 0.1 * gridMax(grid)

	groups, err := Trace(gridX, gridY, grid, []float64{level})
	require.NoError(t, err)

	var radii []float64
	for _, path := range groups[0] {
		for _, p := range path.Points {
			radii = append(radii, math.Hypot(p.X-0.5, p.Y-0.5))
		}
	}
	require.NotEmpty(t, radii)
	// exp(-r^2/0.02) = 0.1 ⇒ r ≈ 0.2146. Grid discretisation wobbles the
	// traced radius by less than a cell.
	want := math.Sqrt(-0.02 * math.Log(0.1))
	for _, r := range radii {
		assert.InDelta(t, want, r, 0.02)
	}
}

func TestTraceAllOrNothing(t *testing.T) {
	t.Parallel()

	gridX, gridY, grid := testutil.GaussianBumpGrid(64)
	good := 0.5 * gridMax(grid)
	impossible := 2 * gridMax(grid)

	t.Run("good level alone succeeds", func(t *testing.T) {
		t.Parallel()
		groups, err := Trace(gridX, gridY, grid, []float64{good})
		require.NoError(t, err)
		assert.Len(t, groups, 1)
	})

	t.Run("one failing level fails the whole call", func(t *testing.T) {
		t.Parallel()
		groups, err := Trace(gridX, gridY, grid, []float64{good, impossible})
		require.ErrorIs(t, err, ErrContourFidelity)
		assert.Nil(t, groups, "no partial results on fidelity failure")
	})
}

func TestTraceGroupOrderFollowsRequests(t *testing.T) {
	t.Parallel()

	gridX, gridY, grid := testutil.GaussianBumpGrid(64)
	max := gridMax(grid)
	inner := 0.6 * max
	outer := 0.2 * max

	groups, err := Trace(gridX, gridY, grid, []float64{inner, outer})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Groups line up with the request order, not the sorted levels: the
	// higher threshold's contour hugs the peak.
	assert.Less(t, maxRadius(groups[0]), maxRadius(groups[1]))
}

func TestTraceDuplicateThresholds(t *testing.T) {
	t.Parallel()

	gridX, gridY, grid := testutil.GaussianBumpGrid(48)
	level := 0.4 * gridMax(grid)

	groups, err := Trace(gridX, gridY, grid, []float64{level, level})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, groups[0], groups[1])
}

func TestTraceOpenContour(t *testing.T) {
	t.Parallel()

	// A planar ramp crosses the level on a straight line from grid edge to
	// grid edge, producing one open path.
	const size = 32
	gridX := make([]float64, size)
	gridY := make([]float64, size)
	grid := make([][]float64, size)
	for k := 0; k < size; k++ {
		gridX[k] = float64(k)
		gridY[k] = float64(k)
	}
	for i := range grid {
		row := make([]float64, size)
		for j := range row {
			row[j] = gridX[j]
		}
		grid[i] = row
	}

	groups, err := Trace(gridX, gridY, grid, []float64{15.5})
	require.NoError(t, err)
	require.Len(t, groups[0], 1)
	path := groups[0][0]
	assert.False(t, path.Closed)
	assert.GreaterOrEqual(t, len(path.Points), MinContourPoints)
	for _, p := range path.Points {
		assert.InDelta(t, 15.5, p.X, 1e-9)
	}
}

func TestTraceShapeMismatch(t *testing.T) {
	t.Parallel()

	gridX, gridY, grid := testutil.GaussianBumpGrid(16)
	_, err := Trace(gridX, gridY[:8], grid, []float64{0.5})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrContourFidelity)
}

func maxRadius(paths []Path) float64 {
	var m float64
	for _, path := range paths {
		for _, p := range path.Points {
			m = math.Max(m, math.Hypot(p.X-0.5, p.Y-0.5))
		}
	}
	return m
}
