package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestReport(t *testing.T, resultsDir, platform, content string) {
	t.Helper()
	path := ReportPath(resultsDir, platform)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadReports(t *testing.T) {
	dir := t.TempDir()
	writeTestReport(t, dir, PlatformGolang,
		`{"platform":"Golang","goVersion":"go1.25.0","results":[
			{"name":"T1","avgTime":10.0,"minTime":9.0,"maxTime":11.0,"iterations":5},
			{"name":"T2","avgTime":3.5,"minTime":3.0,"maxTime":4.0,"iterations":10}]}`)
	writeTestReport(t, dir, PlatformPython,
		`{"platform":"Python","pythonVersion":"3.11.4","results":[
			{"name":"T1","avgTime":"20.0","minTime":"18.0","maxTime":"22.0","iterations":5}]}`)

	reports, errs := LoadReports(dir)
	assert.Empty(t, errs)
	require.Len(t, reports, 2)

	// record count equals the sum of results entries across inputs
	total := 0
	for _, rep := range reports {
		total += len(rep.Results)
	}
	assert.Equal(t, 3, total)

	assert.Equal(t, PlatformGolang, reports[0].Platform)
	assert.Equal(t, "go1.25.0", reports[0].Version())
	assert.Equal(t, PlatformPython, reports[1].Platform)
	assert.Equal(t, Millis(20.0), reports[1].Results[0].AvgTimeMs)
}

func TestLoadReports_MissingPlatformTolerated(t *testing.T) {
	dir := t.TempDir()
	writeTestReport(t, dir, PlatformJavaScript,
		`{"platform":"JavaScript","nodeVersion":"v20.5.0","results":[
			{"name":"T1","avgTime":15.0,"minTime":14.0,"maxTime":16.0,"iterations":5}]}`)

	reports, errs := LoadReports(dir)
	assert.Empty(t, errs)
	require.Len(t, reports, 1)
	assert.Equal(t, PlatformJavaScript, reports[0].Platform)
}

func TestLoadReports_EmptyDirectory(t *testing.T) {
	reports, errs := LoadReports(t.TempDir())
	assert.Empty(t, errs)
	assert.Empty(t, reports)
}

func TestLoadReports_MalformedAbortsPlatformOnly(t *testing.T) {
	dir := t.TempDir()
	writeTestReport(t, dir, PlatformGolang, `{"results": [`)
	writeTestReport(t, dir, PlatformPython,
		`{"platform":"Python","results":[{"name":"T1","avgTime":20.0,"minTime":18.0,"maxTime":22.0,"iterations":5}]}`)

	reports, errs := LoadReports(dir)
	require.Len(t, errs, 1)
	assert.Equal(t, PlatformGolang, errs[0].Platform)
	require.Len(t, reports, 1)
	assert.Equal(t, PlatformPython, reports[0].Platform)
}

func TestLoadReports_GolangRawOutputFallback(t *testing.T) {
	dir := t.TempDir()
	path := RawOutputPath(dir, PlatformGolang)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("100 1500000 ns/op 200 B/op 3 allocs/op\n"), 0644))

	reports, errs := LoadReports(dir)
	assert.Empty(t, errs)
	require.Len(t, reports, 1)
	assert.Equal(t, PlatformGolang, reports[0].Platform)
	require.Len(t, reports[0].Results, 1)
	assert.Equal(t, Millis(1.5), reports[0].Results[0].AvgTimeMs)
	assert.Equal(t, TestNames[0], reports[0].Results[0].Name)
}

func TestLoadReports_PlatformDefaultedFromPath(t *testing.T) {
	dir := t.TempDir()
	writeTestReport(t, dir, PlatformPython,
		`{"results":[{"name":"T1","avgTime":20.0,"minTime":18.0,"maxTime":22.0,"iterations":5}]}`)

	reports, errs := LoadReports(dir)
	assert.Empty(t, errs)
	require.Len(t, reports, 1)
	assert.Equal(t, PlatformPython, reports[0].Platform)
}
