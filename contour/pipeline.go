package contour

import (
	"time"

	"github.com/petrolab/terncontour/internal/monitoring"
	"github.com/petrolab/terncontour/kde"
	"github.com/petrolab/terncontour/ternary"
)

// Options configures a pipeline invocation. The zero value selects the
// defaults for every field.
type Options struct {
	// BandwidthScale multiplies the estimator's rule-of-thumb bandwidth.
	BandwidthScale float64

	// GridResolution is the number of density samples per axis. Finer grids
	// give smoother contours at quadratic cost in evaluation count.
	GridResolution int
}

// DefaultOptions returns the options used by the plotting layer.
func DefaultOptions() Options {
	return Options{
		BandwidthScale: kde.DefaultBandwidthScale,
		GridResolution: kde.DefaultGridResolution,
	}
}

// Group holds the contours traced for one requested coverage fraction.
type Group struct {
	// Fraction is the coverage fraction this group answers.
	Fraction float64

	// Paths are the iso-density polylines enclosing that fraction of the
	// estimated mass. One fraction may yield zero, one, or several disjoint
	// paths.
	Paths []TernaryPath
}

// Compute runs the full pipeline: project the compositions onto the simplex
// plane, build the density estimate, solve the coverage thresholds, trace
// iso-density contours, and map them back to ternary coordinates.
//
// The result has one Group per coverage fraction, in request order. On any
// failure no partial result is returned; callers discriminate the cause with
// errors.Is against ternary.ErrDegenerateInput, kde.ErrInsufficientData,
// ErrInvalidCoverage, ErrNonNumericCoverage and ErrContourFidelity.
func Compute(points []ternary.Point, fractions []float64, opts Options) ([]Group, error) {
	start := time.Now()

	// Input-shape checks come before any grid work.
	if err := ValidateFractions(fractions); err != nil {
		return nil, err
	}
	planar, err := ternary.PointsToPlanar(points)
	if err != nil {
		return nil, err
	}
	surface, err := kde.Build(planar, opts.BandwidthScale)
	if err != nil {
		return nil, err
	}

	gridX, gridY := surface.GridAxes(opts.GridResolution)
	grid := surface.Evaluate(gridX, gridY)

	thresholds, err := SolveThresholds(grid, fractions)
	if err != nil {
		return nil, err
	}
	traced, err := Trace(gridX, gridY, grid, thresholds)
	if err != nil {
		return nil, err
	}
	projected := Project(traced)

	groups := make([]Group, len(fractions))
	for k, f := range fractions {
		groups[k] = Group{Fraction: f, Paths: projected[k]}
	}

	monitoring.Logf("contour: %d points, %dx%d grid, %d levels in %s",
		len(points), len(gridX), len(gridY), len(fractions), time.Since(start).Round(time.Millisecond))
	return groups, nil
}

// SetLogger redirects the pipeline's diagnostic logging. Passing nil mutes
// it. Hosts embedding the engine in a GUI typically mute or capture this.
func SetLogger(f func(format string, v ...interface{})) {
	monitoring.SetLogger(f)
}
