package contour

import (
	"fmt"

	"github.com/petrolab/terncontour/ternary"
)

// MinContourPoints is the fidelity floor: a traced level is accepted only if
// at least one of its paths carries this many points. Shorter results are
// degenerate single-segment or noise-driven micro-contours.
const MinContourPoints = 12

// Path is an iso-density polyline in planar coordinates. A closed path does
// not repeat its first point at the end.
type Path struct {
	Points []ternary.XY
	Closed bool
}

// Trace extracts iso-density polylines at each threshold using marching
// squares over the row-major grid (grid[i][j] is the value at
// (gridX[j], gridY[i])).
//
// Marching squares runs once per distinct threshold; the returned groups are
// ordered by the original threshold index so callers can zip them back
// against their coverage requests. The call succeeds only if every requested
// threshold produced a group passing the MinContourPoints floor; otherwise
// it returns ErrContourFidelity and no partial result.
func Trace(gridX, gridY []float64, grid [][]float64, thresholds []float64) ([][]Path, error) {
	if len(grid) != len(gridY) {
		return nil, fmt.Errorf("grid has %d rows, want %d", len(grid), len(gridY))
	}
	for i, row := range grid {
		if len(row) != len(gridX) {
			return nil, fmt.Errorf("grid row %d has %d columns, want %d", i, len(row), len(gridX))
		}
	}
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("no thresholds supplied")
	}

	byLevel := make(map[float64][]Path, len(thresholds))
	for _, level := range thresholds {
		if _, done := byLevel[level]; done {
			continue
		}
		byLevel[level] = marchingSquares(gridX, gridY, grid, level)
	}

	groups := make([][]Path, len(thresholds))
	var rejected []int
	for k, level := range thresholds {
		paths := byLevel[level]
		groups[k] = append([]Path(nil), paths...)
		if !meetsFloor(paths) {
			rejected = append(rejected, k)
		}
	}
	if len(rejected) > 0 {
		return nil, fmt.Errorf("%w: level index(es) %v produced no path with at least %d points",
			ErrContourFidelity, rejected, MinContourPoints)
	}
	return groups, nil
}

func meetsFloor(paths []Path) bool {
	for _, p := range paths {
		if len(p.Points) >= MinContourPoints {
			return true
		}
	}
	return false
}

// msNode identifies a grid edge carrying a contour crossing. A horizontal
// edge runs from column j to j+1 within row i; a vertical edge runs from row
// i to i+1 within column j. Identifying crossings by edge rather than by
// coordinates makes segment chaining exact: adjacent cells share edges, not
// approximately equal floats.
type msNode struct {
	vertical bool
	i, j     int
}

type msSegment struct {
	a, b msNode
}

// marchingSquares traces the iso-line at level over the grid and chains the
// per-cell segments into polylines. Cells are visited in row-major order, so
// the output is deterministic.
func marchingSquares(gridX, gridY []float64, grid [][]float64, level float64) []Path {
	rows := len(gridY)
	cols := len(gridX)

	var segs []msSegment
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			v00 := grid[i][j]     // bottom-left
			v01 := grid[i][j+1]   // bottom-right
			v11 := grid[i+1][j+1] // top-right
			v10 := grid[i+1][j]   // top-left

			idx := 0
			if v00 >= level {
				idx |= 1
			}
			if v01 >= level {
				idx |= 2
			}
			if v11 >= level {
				idx |= 4
			}
			if v10 >= level {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			bottom := msNode{vertical: false, i: i, j: j}
			top := msNode{vertical: false, i: i + 1, j: j}
			left := msNode{vertical: true, i: i, j: j}
			right := msNode{vertical: true, i: i, j: j + 1}

			switch idx {
			case 1, 14:
				segs = append(segs, msSegment{left, bottom})
			case 2, 13:
				segs = append(segs, msSegment{bottom, right})
			case 3, 12:
				segs = append(segs, msSegment{left, right})
			case 4, 11:
				segs = append(segs, msSegment{right, top})
			case 6, 9:
				segs = append(segs, msSegment{bottom, top})
			case 7, 8:
				segs = append(segs, msSegment{left, top})
			case 5, 10:
				// Saddle cell: disambiguate on the cell-centre average.
				centreHigh := (v00+v01+v10+v11)/4 >= level
				if (idx == 5) == centreHigh {
					segs = append(segs, msSegment{bottom, right}, msSegment{top, left})
				} else {
					segs = append(segs, msSegment{left, bottom}, msSegment{right, top})
				}
			}
		}
	}

	return chainSegments(segs, gridX, gridY, grid, level)
}

// pos interpolates the crossing location along the node's grid edge.
func (n msNode) pos(gridX, gridY []float64, grid [][]float64, level float64) ternary.XY {
	if n.vertical {
		v0 := grid[n.i][n.j]
		v1 := grid[n.i+1][n.j]
		t := (level - v0) / (v1 - v0)
		return ternary.XY{X: gridX[n.j], Y: gridY[n.i] + t*(gridY[n.i+1]-gridY[n.i])}
	}
	v0 := grid[n.i][n.j]
	v1 := grid[n.i][n.j+1]
	t := (level - v0) / (v1 - v0)
	return ternary.XY{X: gridX[n.j] + t*(gridX[n.j+1]-gridX[n.j]), Y: gridY[n.i]}
}

// chainSegments joins the per-cell segments into maximal polylines. Each
// crossing node has at most two incident segments, so every chain is either
// an open path (two degree-one ends) or a cycle.
func chainSegments(segs []msSegment, gridX, gridY []float64, grid [][]float64, level float64) []Path {
	if len(segs) == 0 {
		return nil
	}

	incident := make(map[msNode][]int, 2*len(segs))
	for k, s := range segs {
		incident[s.a] = append(incident[s.a], k)
		incident[s.b] = append(incident[s.b], k)
	}

	used := make([]bool, len(segs))
	var paths []Path
	for k := range segs {
		if used[k] {
			continue
		}
		used[k] = true
		nodes := []msNode{segs[k].a, segs[k].b}

		// Grow forward from the tail until the chain ends or closes.
		for {
			tail := nodes[len(nodes)-1]
			next := pickUnused(incident[tail], used)
			if next < 0 {
				break
			}
			used[next] = true
			nodes = append(nodes, otherEnd(segs[next], tail))
		}

		closed := len(nodes) > 2 && nodes[0] == nodes[len(nodes)-1]
		if closed {
			nodes = nodes[:len(nodes)-1]
		} else {
			// Open chain: grow backward from the head as well.
			for {
				head := nodes[0]
				next := pickUnused(incident[head], used)
				if next < 0 {
					break
				}
				used[next] = true
				nodes = append([]msNode{otherEnd(segs[next], head)}, nodes...)
			}
		}

		pts := make([]ternary.XY, len(nodes))
		for m, n := range nodes {
			pts[m] = n.pos(gridX, gridY, grid, level)
		}
		paths = append(paths, Path{Points: pts, Closed: closed})
	}
	return paths
}

func pickUnused(candidates []int, used []bool) int {
	for _, k := range candidates {
		if !used[k] {
			return k
		}
	}
	return -1
}

func otherEnd(s msSegment, n msNode) msNode {
	if s.a == n {
		return s.b
	}
	return s.a
}
