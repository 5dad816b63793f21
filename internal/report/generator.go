package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wordbench/internal/benchmark"
)

// ErrNoData is returned when no platform contributed any records; report
// and chart generation are skipped entirely in that case.
var ErrNoData = errors.New("no benchmark results available")

// Generator turns loaded platform reports into the Markdown report and
// chart images. Single-pass and stateless; every call rebuilds everything
// from the given reports, overwriting prior artifacts.
type Generator struct {
	ResultsDir string
	Baseline   string

	// Now is injectable so report content can be made reproducible.
	Now func() time.Time
}

// Output describes what a Generate call produced.
type Output struct {
	MarkdownPath string
	ChartPaths   []string
	Comparison   Comparison
	Ratios       RatioTable
}

// Generate builds the comparison, renders every chart it can, and writes
// the Markdown report. A failure rendering one chart is logged and does
// not block the remaining charts or the report.
func (g *Generator) Generate(reports []benchmark.Report) (*Output, error) {
	comp := Build(reports)
	if comp.Empty() {
		return nil, ErrNoData
	}
	ratios := comp.Ratios(g.Baseline)

	out := &Output{Comparison: comp, Ratios: ratios}

	chartsDir, err := EnsureChartsDir(g.ResultsDir)
	if err != nil {
		slog.Error("charts skipped", "error", err)
	} else {
		for _, c := range Charts(comp, ratios) {
			path := filepath.Join(chartsDir, c.Name)
			if err := c.Render(path); err != nil {
				slog.Error("chart render failed", "chart", c.Name, "error", err)
				continue
			}
			out.ChartPaths = append(out.ChartPaths, path)
		}
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	md := RenderMarkdown(reports, comp, ratios, now())

	mdPath := filepath.Join(g.ResultsDir, MarkdownFileName)
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, fmt.Errorf("failed to write markdown report: %w", err)
	}
	out.MarkdownPath = mdPath

	return out, nil
}
