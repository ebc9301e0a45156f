package contour

import "github.com/petrolab/terncontour/ternary"

// TernaryPath is a contour polyline mapped back into ternary coordinates.
// This is the artifact handed to the rendering layer.
type TernaryPath struct {
	Points []ternary.Point
	Closed bool
}

// Project maps every traced path back through the inverse coordinate
// transform, preserving the group and path structure. Empty groups pass
// through as empty.
func Project(groups [][]Path) [][]TernaryPath {
	out := make([][]TernaryPath, len(groups))
	for g, paths := range groups {
		if len(paths) == 0 {
			continue
		}
		projected := make([]TernaryPath, len(paths))
		for k, p := range paths {
			projected[k] = TernaryPath{
				Points: ternary.PathToTernary(p.Points),
				Closed: p.Closed,
			}
		}
		out[g] = projected
	}
	return out
}
