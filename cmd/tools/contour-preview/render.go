package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/petrolab/terncontour/contour"
	"github.com/petrolab/terncontour/kde"
	"github.com/petrolab/terncontour/ternary"
)

// renderPNG writes a planar scatter of the input points with one contour
// overlay per coverage fraction.
func renderPNG(path string, planar []ternary.XY, traced [][]contour.Path, fractions []float64) error {
	p := plot.New()
	p.Title.Text = "Density contours"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, len(planar))
	for i, q := range planar {
		pts[i] = plotter.XY{X: q.X, Y: q.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	p.Add(scatter)

	colors := distinctColors(len(fractions))
	for k, group := range traced {
		for _, cp := range group {
			line, err := plotter.NewLine(pathXYs(cp))
			if err != nil {
				return err
			}
			line.Color = colors[k]
			line.Width = vg.Points(1)
			p.Add(line)
		}
		if len(group) > 0 {
			legendLine, err := plotter.NewLine(pathXYs(group[0]))
			if err != nil {
				return err
			}
			legendLine.Color = colors[k]
			p.Legend.Add(legendLabel(fractions[k]), legendLine)
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

// pathXYs converts a contour path for plotting, re-appending the first point
// of a closed path so the drawn polyline closes visually.
func pathXYs(cp contour.Path) plotter.XYs {
	n := len(cp.Points)
	pts := make(plotter.XYs, 0, n+1)
	for _, q := range cp.Points {
		pts = append(pts, plotter.XY{X: q.X, Y: q.Y})
	}
	if cp.Closed && n > 0 {
		pts = append(pts, plotter.XY{X: cp.Points[0].X, Y: cp.Points[0].Y})
	}
	return pts
}

func legendLabel(fraction float64) string {
	return fmt.Sprintf("f=%.2f", fraction)
}

// renderHTML writes an interactive chart: input points plus the traced
// contour points, one series per coverage fraction.
func renderHTML(path string, planar []ternary.XY, traced [][]contour.Path, fractions []float64, surface *kde.Surface) error {
	minX, minY, maxX, maxY := surface.Bounds()
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Density contours", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Density contours"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minX - padX, Max: maxX + padX, Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Min: minY - padY, Max: maxY + padY, Name: "y"}),
	)

	data := make([]opts.ScatterData, len(planar))
	for i, q := range planar {
		data[i] = opts.ScatterData{Value: []interface{}{q.X, q.Y}}
	}
	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	for k, group := range traced {
		var series []opts.ScatterData
		for _, cp := range group {
			for _, q := range cp.Points {
				series = append(series, opts.ScatterData{Value: []interface{}{q.X, q.Y}})
			}
		}
		scatter.AddSeries(legendLabel(fractions[k]), series,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
