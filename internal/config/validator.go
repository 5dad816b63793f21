package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"wordbench/internal/benchmark"
)

// ValidateConfig validates configuration values after viper has loaded
// them and returns an error describing every invalid value at once.
func ValidateConfig() error {
	var errs []string

	if dir := viper.GetString("results_dir"); strings.TrimSpace(dir) == "" {
		errs = append(errs, "results_dir must not be empty")
	}

	baseline := viper.GetString("baseline")
	if strings.TrimSpace(baseline) == "" {
		errs = append(errs, "baseline must not be empty")
	} else {
		known := false
		for _, p := range benchmark.Platforms {
			if p == baseline {
				known = true
				break
			}
		}
		if !known {
			errs = append(errs, fmt.Sprintf("baseline must be one of %s, got: %s",
				strings.Join(benchmark.Platforms, ", "), baseline))
		}
	}

	if viper.IsSet("threshold") {
		if t := viper.GetFloat64("threshold"); t <= 0 {
			errs = append(errs, fmt.Sprintf("threshold must be positive, got: %v", t))
		}
	}

	if viper.IsSet("bench_timeout") {
		if d := viper.GetDuration("bench_timeout"); d <= 0 {
			errs = append(errs, fmt.Sprintf("bench_timeout must be positive, got: %v", d))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
