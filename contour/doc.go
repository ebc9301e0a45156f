// Package contour computes density-contour overlays for ternary scatter
// diagrams.
//
// Given a collection of ternary compositions and a list of coverage
// fractions, Compute projects the points onto the simplex plane, builds a
// Gaussian kernel density estimate, solves for the density threshold whose
// super-level set captures each requested fraction of the discretised mass,
// traces iso-density polylines at those thresholds, and maps the polylines
// back into ternary coordinates for the rendering layer.
//
// The pipeline is pure and synchronous: it never mutates caller data, holds
// no state between invocations, and may be run on any worker goroutine.
package contour
