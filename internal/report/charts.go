package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Fixed chart artifact names inside <results>/charts/.
const (
	ChartsDirName         = "charts"
	AvgTimeChartName      = "avg_time_comparison.png"
	RatioChartName        = "performance_ratio.png"
	HeatmapChartName      = "performance_heatmap.png"
	DistributionChartName = "performance_distribution.png"
)

var platformColors = []color.RGBA{
	{54, 162, 235, 255},  // blue
	{255, 159, 64, 255},  // orange
	{75, 192, 192, 255},  // teal
	{153, 102, 255, 255}, // purple
	{255, 99, 132, 255},  // pinkish-red
}

func platformColor(i int) color.RGBA {
	return platformColors[i%len(platformColors)]
}

// ChartRenderer draws one chart to the given path.
type ChartRenderer struct {
	Name   string
	Render func(path string) error
}

// Charts returns the renderers for the full chart set, in the order they
// should be attempted. The ratio chart is omitted when the ratio table has
// no rows: an empty chart carries no information, and the Markdown report
// already explains the missing baseline.
func Charts(comp Comparison, ratios RatioTable) []ChartRenderer {
	charts := []ChartRenderer{
		{AvgTimeChartName, func(path string) error { return renderAvgBars(comp, path) }},
	}
	if len(ratios.Tests) > 0 {
		charts = append(charts, ChartRenderer{RatioChartName, func(path string) error { return renderRatioBars(ratios, path) }})
	}
	return append(charts,
		ChartRenderer{HeatmapChartName, func(path string) error { return renderHeatmap(comp, path) }},
		ChartRenderer{DistributionChartName, func(path string) error { return renderDistribution(comp, path) }},
	)
}

// renderAvgBars draws grouped bars of average execution time per test,
// one bar group per test, one color per platform.
func renderAvgBars(comp Comparison, path string) error {
	p := plot.New()
	p.Title.Text = "Average Execution Time by Platform (ms)"
	p.Y.Label.Text = "Average time (ms)"
	p.X.Label.Text = "Test"

	if err := addGroupedBars(p, comp.Tests, comp.Platforms, comp.Cell); err != nil {
		return err
	}

	p.Legend.Top = true
	p.NominalX(comp.Tests...)
	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// renderRatioBars draws grouped bars of per-test ratios plus a dashed
// reference line at the baseline value 1.0.
func renderRatioBars(ratios RatioTable, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Relative Performance (baseline %s = 1.0)", ratios.Baseline)
	p.Y.Label.Text = "Ratio"
	p.X.Label.Text = "Test"

	if err := addGroupedBars(p, ratios.Tests, ratios.Platforms, ratios.Cell); err != nil {
		return err
	}

	// baseline reference at y=1.0
	ref, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: 1.0},
		{X: float64(len(ratios.Tests)) - 0.5, Y: 1.0},
	})
	if err != nil {
		return err
	}
	ref.Color = color.RGBA{220, 53, 69, 255}
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ref)
	p.Legend.Add("baseline", ref)

	p.Legend.Top = true
	p.NominalX(ratios.Tests...)
	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

func addGroupedBars(p *plot.Plot, tests, platforms []string, cell func(test, platform string) (float64, bool)) error {
	width := vg.Points(18)
	for j, platform := range platforms {
		values := make(plotter.Values, len(tests))
		for i, test := range tests {
			if v, ok := cell(test, platform); ok {
				values[i] = v
			}
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = 0
		bars.Color = platformColor(j)
		bars.Offset = width * vg.Length(j-len(platforms)/2)
		p.Add(bars)
		p.Legend.Add(platform, bars)
	}
	return nil
}

// comparisonGrid adapts a Comparison to the plotter.GridXYZ interface:
// columns are platforms, rows are tests. Undefined cells are NaN, which
// the heat map leaves blank.
type comparisonGrid struct {
	comp Comparison
}

func (g comparisonGrid) Dims() (int, int) { return len(g.comp.Platforms), len(g.comp.Tests) }
func (g comparisonGrid) X(c int) float64  { return float64(c) }
func (g comparisonGrid) Y(r int) float64  { return float64(r) }

func (g comparisonGrid) Z(c, r int) float64 {
	v, ok := g.comp.Cell(g.comp.Tests[r], g.comp.Platforms[c])
	if !ok {
		return math.NaN()
	}
	return v
}

func renderHeatmap(comp Comparison, path string) error {
	p := plot.New()
	p.Title.Text = "Performance Heatmap (ms)"
	p.X.Label.Text = "Platform"
	p.Y.Label.Text = "Test"

	h := plotter.NewHeatMap(comparisonGrid{comp}, palette.Heat(12, 1))
	p.Add(h)

	xTicks := make([]plot.Tick, len(comp.Platforms))
	for i, platform := range comp.Platforms {
		xTicks[i] = plot.Tick{Value: float64(i), Label: platform}
	}
	yTicks := make([]plot.Tick, len(comp.Tests))
	for i, test := range comp.Tests {
		yTicks[i] = plot.Tick{Value: float64(i), Label: test}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// renderDistribution draws min/avg/max spreads as box-style plots, grouped
// by test with one box per platform. The three-point spread is all the
// normalized records carry.
func renderDistribution(comp Comparison, path string) error {
	p := plot.New()
	p.Title.Text = "Performance Distribution by Test (min/avg/max, ms)"
	p.Y.Label.Text = "Time (ms)"
	p.X.Label.Text = "Test"

	groupWidth := len(comp.Platforms) + 1
	for j, platform := range comp.Platforms {
		for i, test := range comp.Tests {
			rec, ok := comp.Record(test, platform)
			if !ok {
				continue
			}
			loc := float64(i*groupWidth + j)
			box, err := plotter.NewBoxPlot(vg.Points(14), loc, plotter.Values{
				float64(rec.MinTimeMs),
				float64(rec.AvgTimeMs),
				float64(rec.MaxTimeMs),
			})
			if err != nil {
				return err
			}
			box.FillColor = platformColor(j)
			p.Add(box)
		}

		// legend swatch only, never drawn on the plot itself
		swatch, err := plotter.NewBarChart(plotter.Values{0}, vg.Points(1))
		if err != nil {
			return err
		}
		swatch.Color = platformColor(j)
		p.Legend.Add(platform, swatch)
	}

	ticks := make([]plot.Tick, len(comp.Tests))
	for i, test := range comp.Tests {
		center := float64(i*groupWidth) + float64(len(comp.Platforms)-1)/2
		ticks[i] = plot.Tick{Value: center, Label: test}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -1
	p.X.Max = float64(len(comp.Tests) * groupWidth)
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// EnsureChartsDir creates the charts directory under resultsDir.
func EnsureChartsDir(resultsDir string) (string, error) {
	dir := filepath.Join(resultsDir, ChartsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create charts directory: %w", err)
	}
	return dir, nil
}
