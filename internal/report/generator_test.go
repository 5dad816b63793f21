package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordbench/internal/benchmark"
)

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{
		ResultsDir: dir,
		Baseline:   benchmark.PlatformGolang,
		Now:        func() time.Time { return time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) },
	}

	out, err := gen.Generate(twoPlatformReports())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, MarkdownFileName), out.MarkdownPath)
	data, err := os.ReadFile(out.MarkdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Cross-Language Word Processing Performance Report")
	assert.Contains(t, string(data), "2026-08-24 10:00:00")

	require.Len(t, out.ChartPaths, 4)
	for _, p := range out.ChartPaths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, filepath.Join(dir, ChartsDirName), filepath.Dir(p))
	}

	assert.False(t, out.Comparison.Empty())
}

func TestGenerator_BaselineAbsentSkipsRatioChart(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{ResultsDir: dir, Baseline: benchmark.PlatformJavaScript}

	out, err := gen.Generate(twoPlatformReports())
	require.NoError(t, err)

	require.Len(t, out.ChartPaths, 3)
	for _, p := range out.ChartPaths {
		assert.NotEqual(t, RatioChartName, filepath.Base(p))
	}
	_, statErr := os.Stat(filepath.Join(dir, ChartsDirName, RatioChartName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerator_NoData(t *testing.T) {
	gen := &Generator{ResultsDir: t.TempDir(), Baseline: benchmark.PlatformGolang}

	_, err := gen.Generate(nil)
	assert.ErrorIs(t, err, ErrNoData)

	// reports present but all empty still counts as no data
	_, err = gen.Generate([]benchmark.Report{{Platform: benchmark.PlatformGolang}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGenerator_Overwrites(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{ResultsDir: dir, Baseline: benchmark.PlatformGolang}

	first, err := gen.Generate(twoPlatformReports())
	require.NoError(t, err)

	reports := twoPlatformReports()
	reports[1].Results[0].AvgTimeMs = 40.0
	second, err := gen.Generate(reports)
	require.NoError(t, err)

	assert.Equal(t, first.MarkdownPath, second.MarkdownPath)
	data, err := os.ReadFile(second.MarkdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "40.00")
}
