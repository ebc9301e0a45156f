package contour

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ValidateFractions checks a coverage request before any grid work is done.
// It returns ErrInvalidCoverage for an empty request or a fraction outside
// (0, 1], and ErrNonNumericCoverage for NaN or infinite entries.
func ValidateFractions(fractions []float64) error {
	if len(fractions) == 0 {
		return fmt.Errorf("%w: no coverage fractions supplied", ErrInvalidCoverage)
	}
	for _, f := range fractions {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v", ErrNonNumericCoverage, f)
		}
		if f <= 0 || f > 1 {
			return fmt.Errorf("%w: %v not in (0, 1]", ErrInvalidCoverage, f)
		}
	}
	return nil
}

// SolveThresholds finds, for each coverage fraction, the density value whose
// super-level set captures at least that fraction of the total grid mass.
//
// The grid sum stands in for the continuous integral: the flattened values
// are sorted descending, cumulatively summed, and the threshold for fraction
// f is the value at the smallest prefix whose sum reaches f times the total.
// That makes the threshold the tightest one satisfying the coverage bound at
// grid resolution, and thresholds are monotonically non-increasing in f.
//
// If floating-point effects at f near 1 keep the cumulative sum from ever
// reaching the target, the threshold falls back to the minimum grid value
// rather than failing.
func SolveThresholds(grid [][]float64, fractions []float64) ([]float64, error) {
	if err := ValidateFractions(fractions); err != nil {
		return nil, err
	}

	n := 0
	for _, row := range grid {
		n += len(row)
	}
	if n == 0 {
		return nil, errors.New("empty density grid")
	}

	flat := make([]float64, 0, n)
	for _, row := range grid {
		flat = append(flat, row...)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(flat)))

	cum := make([]float64, len(flat))
	floats.CumSum(cum, flat)
	total := cum[len(cum)-1]

	thresholds := make([]float64, len(fractions))
	for k, f := range fractions {
		target := f * total
		idx := sort.Search(len(cum), func(i int) bool { return cum[i] >= target })
		if idx == len(cum) {
			// Rounding kept the cumulative sum below the target. Use the
			// minimum grid value so the call still yields a threshold.
			idx = len(cum) - 1
		}
		thresholds[k] = flat[idx]
	}
	return thresholds, nil
}
