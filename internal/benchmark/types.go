package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Canonical platform names, in the iteration order used everywhere a
// deterministic platform order matters (pivot columns, win tie-breaks).
const (
	PlatformGolang     = "Golang"
	PlatformJavaScript = "JavaScript"
	PlatformPython     = "Python"
)

// Platforms lists every platform the harness knows how to load.
var Platforms = []string{PlatformGolang, PlatformJavaScript, PlatformPython}

// TestNames is the fixed ordered list of benchmark identifiers shared by
// all platforms. Text-mode parsing assigns names to parsed lines by
// position in this list.
var TestNames = []string{
	"Basic Document Creation",
	"Complex Formatting",
	"Table Operations",
	"Large Table Processing",
	"Large Document",
	"Memory Usage",
}

// Millis is a duration in milliseconds. Platform reports are not strict
// about JSON number types ("10.0" and 10.0 both occur), so it decodes from
// either a number or a numeric string.
type Millis float64

func (m *Millis) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid millisecond value %s: %w", string(data), err)
	}
	*m = Millis(v)
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// Round2 rounds to two decimal places, the precision every normalized
// record carries.
func Round2(v float64) Millis {
	return Millis(math.Round(v*100) / 100)
}

// Record is one normalized timing/memory measurement for a single named
// test on a single platform. Immutable once produced by the parser or
// loader.
type Record struct {
	Name        string `json:"name"`
	AvgTimeMs   Millis `json:"avgTime"`
	MinTimeMs   Millis `json:"minTime"`
	MaxTimeMs   Millis `json:"maxTime"`
	Iterations  int64  `json:"iterations"`
	BytesPerOp  int64  `json:"bytesPerOp,omitempty"`
	AllocsPerOp int64  `json:"allocsPerOp,omitempty"`
}

// Report is one platform's performance report artifact, as read from or
// written to results/<platform>/performance_report.json.
type Report struct {
	Timestamp      string   `json:"timestamp"`
	Platform       string   `json:"platform"`
	RuntimeVersion string   `json:"runtimeVersion,omitempty"`
	GoVersion      string   `json:"goVersion,omitempty"`
	NodeVersion    string   `json:"nodeVersion,omitempty"`
	PythonVersion  string   `json:"pythonVersion,omitempty"`
	Results        []Record `json:"results"`
}

// Version resolves the platform runtime version with an explicit
// precedence order: runtimeVersion, goVersion, nodeVersion, pythonVersion.
// Returns "unknown" when no field is set.
func (r Report) Version() string {
	for _, v := range []string{r.RuntimeVersion, r.GoVersion, r.NodeVersion, r.PythonVersion} {
		if v != "" {
			return v
		}
	}
	return "unknown"
}
