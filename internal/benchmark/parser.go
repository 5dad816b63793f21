package benchmark

import (
	"log/slog"
	"regexp"
	"strconv"
)

// Matches the measurement columns of `go test -bench -benchmem` output:
// <iterations> <ns/op> ns/op <bytes> B/op <allocs> allocs/op
var goBenchPattern = regexp.MustCompile(`(\d+)\s+(\d+(?:\.\d+)?)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

// ParseGoBenchOutput extracts records from raw Go benchmark output.
// Lines are matched in order of appearance and assigned names positionally
// from TestNames; lines beyond the name list are dropped with a warning.
//
// The text format carries no per-iteration variance, so min and max are
// estimated as avg*0.9 and avg*1.1. Callers wanting true variance must
// supply it from a JSON report instead.
func ParseGoBenchOutput(output string) []Record {
	matches := goBenchPattern.FindAllStringSubmatch(output, -1)
	if len(matches) > len(TestNames) {
		slog.Warn("benchmark output has more result lines than known test names, extras dropped",
			"parsed", len(matches), "named", len(TestNames))
		matches = matches[:len(TestNames)]
	}

	records := make([]Record, 0, len(matches))
	for i, m := range matches {
		iterations, _ := strconv.ParseInt(m[1], 10, 64)
		nsPerOp, _ := strconv.ParseFloat(m[2], 64)
		bytesPerOp, _ := strconv.ParseInt(m[3], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(m[4], 10, 64)

		avgMs := nsPerOp / 1e6
		records = append(records, Record{
			Name:        TestNames[i],
			AvgTimeMs:   Round2(avgMs),
			MinTimeMs:   Round2(avgMs * 0.9),
			MaxTimeMs:   Round2(avgMs * 1.1),
			Iterations:  iterations,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}
	return records
}
