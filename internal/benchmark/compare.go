package benchmark

import "fmt"

// Comparison describes how one test's measurements moved between two runs
// of the same platform.
type Comparison struct {
	Name        string
	AvgDiff     float64 // percentage change in avg time
	BytesDiff   float64 // percentage change in bytes/op
	AllocsDiff  float64 // percentage change in allocs/op
	Prev        Record
	Curr        Record
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% avg", c.Name, c.AvgDiff)
}

// Compare matches records by test name and reports the percentage change
// for every test present in both runs.
func Compare(prev, curr []Record) []Comparison {
	prevByName := make(map[string]Record, len(prev))
	for _, r := range prev {
		prevByName[r.Name] = r
	}

	var comparisons []Comparison
	for _, c := range curr {
		p, ok := prevByName[c.Name]
		if !ok {
			continue
		}
		comp := Comparison{Name: c.Name, Prev: p, Curr: c}
		if p.AvgTimeMs > 0 {
			comp.AvgDiff = (float64(c.AvgTimeMs) - float64(p.AvgTimeMs)) / float64(p.AvgTimeMs) * 100
		}
		if p.BytesPerOp > 0 {
			comp.BytesDiff = float64(c.BytesPerOp-p.BytesPerOp) / float64(p.BytesPerOp) * 100
		}
		if p.AllocsPerOp > 0 {
			comp.AllocsDiff = float64(c.AllocsPerOp-p.AllocsPerOp) / float64(p.AllocsPerOp) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}
