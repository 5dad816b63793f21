package benchmark

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	reportFileName = "performance_report.json"
	rawOutputName  = "benchmark_output.txt"
)

// LoadError records a platform whose report existed but could not be
// ingested. It aborts that platform only, never the whole load.
type LoadError struct {
	Platform string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s results: %v", e.Platform, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReportPath returns the conventional report location for a platform.
func ReportPath(resultsDir, platform string) string {
	return filepath.Join(resultsDir, strings.ToLower(platform), reportFileName)
}

// RawOutputPath returns the conventional raw benchmark output location for
// a platform. Only the Golang platform produces this artifact.
func RawOutputPath(resultsDir, platform string) string {
	return filepath.Join(resultsDir, strings.ToLower(platform), rawOutputName)
}

// LoadReports reads every known platform's report from resultsDir and
// returns the reports found. A missing report means that platform is
// simply absent from the comparison. A malformed report is returned as a
// LoadError for that platform; remaining platforms still load. For the
// Golang platform a raw benchmark_output.txt is parsed when no JSON report
// exists.
func LoadReports(resultsDir string) ([]Report, []*LoadError) {
	var (
		reports []Report
		errs    []*LoadError
	)

	for _, platform := range Platforms {
		rep, err := loadPlatform(resultsDir, platform)
		if err != nil {
			errs = append(errs, &LoadError{Platform: platform, Err: err})
			continue
		}
		if rep == nil {
			slog.Debug("no results for platform", "platform", platform)
			continue
		}
		reports = append(reports, *rep)
	}
	return reports, errs
}

func loadPlatform(resultsDir, platform string) (*Report, error) {
	path := ReportPath(resultsDir, platform)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var rep Report
		if err := json.Unmarshal(data, &rep); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if rep.Platform == "" {
			rep.Platform = platform
		}
		return &rep, nil

	case os.IsNotExist(err):
		if platform != PlatformGolang {
			return nil, nil
		}
		return loadGolangRawOutput(resultsDir)

	default:
		return nil, err
	}
}

// loadGolangRawOutput falls back to the text artifact left behind by a
// `go test -bench` run that was never converted to JSON.
func loadGolangRawOutput(resultsDir string) (*Report, error) {
	path := RawOutputPath(resultsDir, PlatformGolang)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	records := ParseGoBenchOutput(string(data))
	if len(records) == 0 {
		return nil, nil
	}
	return &Report{
		Platform: PlatformGolang,
		Results:  records,
	}, nil
}
