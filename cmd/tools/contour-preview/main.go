// Command contour-preview runs the ternary density-contour pipeline over a
// CSV of compositions and writes debug renderings of the result.
//
// The CSV carries one composition per row as three numeric columns (a, b, c);
// a header row is skipped automatically. Output goes to a timestamped
// directory under -out: a PNG of the planar scatter with contour overlays,
// plus optional HTML and JSON artifacts.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/petrolab/terncontour/contour"
	"github.com/petrolab/terncontour/kde"
	"github.com/petrolab/terncontour/ternary"
)

func main() {
	var (
		input      = flag.String("input", "", "CSV file of ternary compositions (a,b,c per row)")
		levels     = flag.String("levels", "0.5,0.68,0.95", "comma-separated coverage fractions in (0,1]")
		bwScale    = flag.Float64("bandwidth-scale", kde.DefaultBandwidthScale, "multiplier on the rule-of-thumb bandwidth")
		resolution = flag.Int("resolution", kde.DefaultGridResolution, "density samples per grid axis")
		outBase    = flag.String("out", "plots", "base output directory")
		htmlOut    = flag.Bool("html", false, "also write an interactive HTML chart")
		jsonOut    = flag.Bool("json", false, "also write the ternary contours as JSON")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing required -input CSV file")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	points, err := parsePoints(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse %s: %v", *input, err)
	}

	fractions, err := parseLevels(*levels)
	if err != nil {
		log.Fatalf("parse -levels: %v", err)
	}

	// Run the stages individually so the planar intermediates are available
	// for plotting alongside the final ternary output.
	planar, err := ternary.PointsToPlanar(points)
	if err != nil {
		log.Fatalf("transform: %v", err)
	}
	surface, err := kde.Build(planar, *bwScale)
	if err != nil {
		log.Fatalf("density estimate: %v", err)
	}
	gridX, gridY := surface.GridAxes(*resolution)
	grid := surface.Evaluate(gridX, gridY)
	thresholds, err := contour.SolveThresholds(grid, fractions)
	if err != nil {
		log.Fatalf("level-set solve: %v", err)
	}
	traced, err := contour.Trace(gridX, gridY, grid, thresholds)
	if err != nil {
		log.Fatalf("contour trace: %v", err)
	}
	projected := contour.Project(traced)

	outDir := makeOutputDir(*outBase, *input)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	pngFile := filepath.Join(outDir, "contours.png")
	if err := renderPNG(pngFile, planar, traced, fractions); err != nil {
		log.Fatalf("render PNG: %v", err)
	}
	log.Printf("wrote %s", pngFile)

	if *htmlOut {
		htmlFile := filepath.Join(outDir, "contours.html")
		if err := renderHTML(htmlFile, planar, traced, fractions, surface); err != nil {
			log.Fatalf("render HTML: %v", err)
		}
		log.Printf("wrote %s", htmlFile)
	}

	if *jsonOut {
		jsonFile := filepath.Join(outDir, "contours.json")
		groups := make([]contour.Group, len(fractions))
		for k, frac := range fractions {
			groups[k] = contour.Group{Fraction: frac, Paths: projected[k]}
		}
		if err := writeJSON(jsonFile, groups); err != nil {
			log.Fatalf("write JSON: %v", err)
		}
		log.Printf("wrote %s", jsonFile)
	}

	for k, frac := range fractions {
		log.Printf("f=%.3f: threshold %.6g, %d path(s)", frac, thresholds[k], len(traced[k]))
	}
}

// parsePoints reads ternary compositions from CSV. Rows need at least three
// numeric fields; a single non-numeric leading row is treated as a header.
func parsePoints(r io.Reader) ([]ternary.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []ternary.Point
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		if len(record) < 3 {
			return nil, fmt.Errorf("row %d: need 3 columns, have %d", row, len(record))
		}

		var vals [3]float64
		ok := true
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			if row == 1 {
				continue // header
			}
			return nil, fmt.Errorf("row %d: non-numeric composition %q", row, record[:3])
		}
		points = append(points, ternary.Point{A: vals[0], B: vals[1], C: vals[2]})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no compositions found")
	}
	return points, nil
}

// parseLevels splits a comma-separated list of coverage fractions.
func parseLevels(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	fractions := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad fraction %q: %w", part, err)
		}
		fractions = append(fractions, v)
	}
	if len(fractions) == 0 {
		return nil, fmt.Errorf("no coverage fractions in %q", s)
	}
	return fractions, nil
}

// makeOutputDir builds a timestamped output directory from the input file
// base name: <base>/<input-stem>/<timestamp>.
func makeOutputDir(baseDir, inputFile string) string {
	name := filepath.Base(inputFile)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	ts := time.Now().Format("20060102_150405")
	return filepath.Join(baseDir, name, ts)
}

func writeJSON(path string, groups []contour.Group) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}
