package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteReport writes a platform report to its conventional path under
// resultsDir, creating directories as needed. Reruns overwrite.
func WriteReport(resultsDir string, rep Report) (string, error) {
	path := ReportPath(resultsDir, rep.Platform)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteRawOutput persists the unparsed benchmark tool output next to the
// platform report so the text can be re-ingested later.
func WriteRawOutput(resultsDir, platform, output string) (string, error) {
	path := RawOutputPath(resultsDir, platform)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return "", err
	}
	return path, nil
}
