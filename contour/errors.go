package contour

import "errors"

var (
	// ErrInvalidCoverage reports a coverage fraction outside (0, 1] or an
	// empty coverage request.
	ErrInvalidCoverage = errors.New("invalid coverage fraction")

	// ErrNonNumericCoverage reports a coverage fraction that is NaN or
	// infinite and therefore cannot rank grid mass.
	ErrNonNumericCoverage = errors.New("non-numeric coverage fraction")

	// ErrContourFidelity reports that at least one requested level failed the
	// minimum-fidelity floor. Tracing is all-or-nothing: no partial result is
	// returned, because rendering some but not all requested contours would
	// mislead the reader of the plot.
	ErrContourFidelity = errors.New("contour below fidelity floor")
)
