package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordbench/internal/benchmark"
	"wordbench/internal/db"
)

const sampleBenchOutput = `goos: linux
goarch: amd64
pkg: wordbench/benchmarks
BenchmarkBasicDocumentCreation-8        100     1500000 ns/op      2048 B/op       12 allocs/op
BenchmarkComplexFormatting-8             50     3000000 ns/op      4096 B/op       30 allocs/op
PASS
ok      wordbench/benchmarks    2.153s
`

type mockRunner struct {
	output string
	err    error
}

func (m *mockRunner) Run(ctx context.Context, packagePath string) (string, error) {
	return m.output, m.err
}

type mockStore struct {
	latest    *db.Run
	latestErr error
	saved     []db.Run
	saveErr   error
	runs      []db.Run
	closed    bool
}

func (m *mockStore) Close() error { m.closed = true; return nil }

func (m *mockStore) SaveRun(run db.Run) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.saved = append(m.saved, run)
	return int64(len(m.saved)), nil
}

func (m *mockStore) LatestRun(platform string) (*db.Run, error) {
	return m.latest, m.latestErr
}

func (m *mockStore) ListRuns(limit int) ([]db.Run, error) {
	if limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func setupRunTest(t *testing.T, runner benchmark.Runner, store *mockStore) {
	t.Helper()

	origRunner := newRunnerFunc
	origStore := newStoreFunc
	t.Cleanup(func() {
		newRunnerFunc = origRunner
		newStoreFunc = origStore
		viper.Reset()
	})

	newRunnerFunc = func() benchmark.Runner { return runner }
	newStoreFunc = func(path string) (db.Store, error) { return store, nil }

	viper.Reset()
	viper.Set("results_dir", t.TempDir())
	viper.Set("bench_package", "./benchmarks")
	viper.Set("history_db", "unused")
	viper.Set("threshold", 10.0)
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCmd(t *testing.T) {
	store := &mockStore{}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	out, err := executeCmd(newRunCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "Basic Document Creation")
	assert.Contains(t, out, "Complex Formatting")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "Report written to")

	// report lands in the platform subdirectory
	path := benchmark.ReportPath(viper.GetString("results_dir"), benchmark.PlatformGolang)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)

	// neither --save nor --compare given, store untouched
	assert.Empty(t, store.saved)
	assert.False(t, store.closed)
}

func TestRunCmd_NoResults(t *testing.T) {
	setupRunTest(t, &mockRunner{output: "PASS\nok\n"}, &mockStore{})

	out, err := executeCmd(newRunCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No benchmark results found.")
}

func TestRunCmd_RunnerError(t *testing.T) {
	setupRunTest(t, &mockRunner{err: assert.AnError}, &mockStore{})

	_, err := executeCmd(newRunCmd())
	assert.Error(t, err)
}

func TestRunCmd_Save(t *testing.T) {
	store := &mockStore{}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	out, err := executeCmd(newRunCmd(), "--save")
	require.NoError(t, err)

	assert.Contains(t, out, "Results saved to history")
	require.Len(t, store.saved, 1)
	assert.Equal(t, benchmark.PlatformGolang, store.saved[0].Platform)
	assert.Len(t, store.saved[0].Records, 2)
	assert.True(t, store.closed)
}

func TestRunCmd_CompareNoPrevious(t *testing.T) {
	store := &mockStore{}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	out, err := executeCmd(newRunCmd(), "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "No previous run to compare against.")
}

func TestRunCmd_CompareWithinThreshold(t *testing.T) {
	store := &mockStore{
		latest: &db.Run{
			Platform: benchmark.PlatformGolang,
			Records: []benchmark.Record{
				{Name: "Basic Document Creation", AvgTimeMs: 1.45},
				{Name: "Complex Formatting", AvgTimeMs: 2.95},
			},
		},
	}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	out, err := executeCmd(newRunCmd(), "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "Comparison with previous run")
	assert.Contains(t, out, "DIFF %")
}

func TestRunCmd_CompareRegression(t *testing.T) {
	// previous run was twice as fast, well past the default threshold
	store := &mockStore{
		latest: &db.Run{
			Platform: benchmark.PlatformGolang,
			Records: []benchmark.Record{
				{Name: "Basic Document Creation", AvgTimeMs: 0.75},
			},
		},
	}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	out, err := executeCmd(newRunCmd(), "--compare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performance regression detected")
	assert.Contains(t, out, "regression")
}

func TestRunCmd_CompareRegressionUnderRaisedThreshold(t *testing.T) {
	store := &mockStore{
		latest: &db.Run{
			Platform: benchmark.PlatformGolang,
			Records: []benchmark.Record{
				{Name: "Basic Document Creation", AvgTimeMs: 1.0},
			},
		},
	}
	setupRunTest(t, &mockRunner{output: sampleBenchOutput}, store)

	// 50% slower but the flag raises the bar past it
	_, err := executeCmd(newRunCmd(), "--compare", "--threshold", "60")
	assert.NoError(t, err)
}
