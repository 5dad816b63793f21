package report

import (
	"wordbench/internal/benchmark"
)

// Comparison is the pivoted view of all loaded records: rows are test
// names, columns are platforms, cells are average execution time in
// milliseconds. A (test, platform) pair with no record has no cell.
// Regenerated fresh on every run; never mutated after Build.
type Comparison struct {
	Tests     []string
	Platforms []string

	// avg[test][platform], only defined cells present
	avg map[string]map[string]float64

	// full record per cell, for the distribution chart and summaries
	records map[string]map[string]benchmark.Record
}

// Build pivots the union of platform reports into a Comparison. Platform
// order is the canonical order followed by first appearance; test order is
// the canonical test list followed by first appearance. Duplicate
// (test, platform) entries keep the last one seen, matching a rerun
// overwriting its predecessor.
func Build(reports []benchmark.Report) Comparison {
	c := Comparison{
		avg:     make(map[string]map[string]float64),
		records: make(map[string]map[string]benchmark.Record),
	}

	seenPlatform := make(map[string]bool)
	seenTest := make(map[string]bool)

	present := make(map[string]bool, len(reports))
	for _, rep := range reports {
		present[rep.Platform] = true
	}
	for _, p := range benchmark.Platforms {
		if present[p] {
			c.Platforms = append(c.Platforms, p)
			seenPlatform[p] = true
		}
	}

	canonical := make(map[string]bool, len(benchmark.TestNames))
	for _, name := range benchmark.TestNames {
		canonical[name] = true
	}

	var extraTests []string
	for _, rep := range reports {
		if !seenPlatform[rep.Platform] {
			c.Platforms = append(c.Platforms, rep.Platform)
			seenPlatform[rep.Platform] = true
		}
		for _, rec := range rep.Results {
			if !seenTest[rec.Name] && !canonical[rec.Name] {
				extraTests = append(extraTests, rec.Name)
			}
			seenTest[rec.Name] = true

			if c.avg[rec.Name] == nil {
				c.avg[rec.Name] = make(map[string]float64)
				c.records[rec.Name] = make(map[string]benchmark.Record)
			}
			c.avg[rec.Name][rep.Platform] = float64(rec.AvgTimeMs)
			c.records[rec.Name][rep.Platform] = rec
		}
	}

	for _, name := range benchmark.TestNames {
		if seenTest[name] {
			c.Tests = append(c.Tests, name)
		}
	}
	c.Tests = append(c.Tests, extraTests...)

	return c
}

// Empty reports whether the comparison holds no cells at all.
func (c Comparison) Empty() bool {
	return len(c.Tests) == 0 || len(c.Platforms) == 0
}

// Cell returns the average time for a (test, platform) pair, and whether
// the cell is defined.
func (c Comparison) Cell(test, platform string) (float64, bool) {
	row, ok := c.avg[test]
	if !ok {
		return 0, false
	}
	v, ok := row[platform]
	return v, ok
}

// Record returns the full normalized record behind a cell.
func (c Comparison) Record(test, platform string) (benchmark.Record, bool) {
	row, ok := c.records[test]
	if !ok {
		return benchmark.Record{}, false
	}
	rec, ok := row[platform]
	return rec, ok
}

// RatioTable holds per-test ratios of each platform's average time against
// the baseline platform's. The baseline column is exactly 1.0 everywhere
// it is defined.
type RatioTable struct {
	Baseline  string
	Tests     []string
	Platforms []string
	ratio     map[string]map[string]float64
}

// Cell returns the ratio for a (test, platform) pair, and whether it is
// defined.
func (t RatioTable) Cell(test, platform string) (float64, bool) {
	row, ok := t.ratio[test]
	if !ok {
		return 0, false
	}
	v, ok := row[platform]
	return v, ok
}

// Ratios derives the ratio table against the named baseline platform.
// When the baseline platform is absent from the comparison the result has
// zero rows. Rows where the baseline cell is undefined or zero are
// likewise skipped.
func (c Comparison) Ratios(baseline string) RatioTable {
	t := RatioTable{
		Baseline:  baseline,
		Platforms: c.Platforms,
		ratio:     make(map[string]map[string]float64),
	}

	baselinePresent := false
	for _, p := range c.Platforms {
		if p == baseline {
			baselinePresent = true
			break
		}
	}
	if !baselinePresent {
		return t
	}

	for _, test := range c.Tests {
		base, ok := c.Cell(test, baseline)
		if !ok || base == 0 {
			continue
		}
		row := make(map[string]float64)
		for _, p := range c.Platforms {
			if v, ok := c.Cell(test, p); ok {
				row[p] = v / base
			}
		}
		t.Tests = append(t.Tests, test)
		t.ratio[test] = row
	}
	return t
}

// Winner names the strictly fastest platform for one test.
type Winner struct {
	Test      string
	Platform  string
	AvgTimeMs float64
}

// Winners returns the fastest platform per test, in test order. Ties go to
// the first platform in iteration order.
func (c Comparison) Winners() []Winner {
	var winners []Winner
	for _, test := range c.Tests {
		best := Winner{Test: test}
		found := false
		for _, p := range c.Platforms {
			v, ok := c.Cell(test, p)
			if !ok {
				continue
			}
			if !found || v < best.AvgTimeMs {
				best.Platform = p
				best.AvgTimeMs = v
				found = true
			}
		}
		if found {
			winners = append(winners, best)
		}
	}
	return winners
}

// PlatformMean is a platform's mean average time across the tests it has
// results for.
type PlatformMean struct {
	Platform string
	MeanMs   float64
	Tests    int
}

// PlatformMeans computes each platform's overall mean in platform order.
// Platforms with no cells are omitted.
func (c Comparison) PlatformMeans() []PlatformMean {
	var means []PlatformMean
	for _, p := range c.Platforms {
		var sum float64
		var n int
		for _, test := range c.Tests {
			if v, ok := c.Cell(test, p); ok {
				sum += v
				n++
			}
		}
		if n > 0 {
			means = append(means, PlatformMean{Platform: p, MeanMs: sum / float64(n), Tests: n})
		}
	}
	return means
}

// Fastest returns the platform with the lowest overall mean, if any.
func (c Comparison) Fastest() (PlatformMean, bool) {
	means := c.PlatformMeans()
	if len(means) == 0 {
		return PlatformMean{}, false
	}
	best := means[0]
	for _, m := range means[1:] {
		if m.MeanMs < best.MeanMs {
			best = m
		}
	}
	return best, true
}
