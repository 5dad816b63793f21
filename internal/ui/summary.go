package ui

import (
	"fmt"
	"strings"

	"wordbench/internal/report"
)

// RenderSummary formats the comparison outcome for the terminal: overall
// fastest platform, per-test winners, and per-platform means.
func RenderSummary(comp report.Comparison) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Performance Comparison Summary"))
	b.WriteString("\n")

	if fastest, ok := comp.Fastest(); ok {
		b.WriteString(sectionStyle.Render("Overall fastest"))
		b.WriteString("\n")
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s (mean %.2fms)",
			winnerStyle.Render(fastest.Platform), fastest.MeanMs)))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Per-test winners"))
	b.WriteString("\n")
	for _, w := range comp.Winners() {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s: %s (%.2fms)",
			fadedStyle.Render(w.Test), winnerStyle.Render(w.Platform), w.AvgTimeMs)))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Platform means"))
	b.WriteString("\n")
	for _, m := range comp.PlatformMeans() {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s: %.2fms over %d tests",
			m.Platform, m.MeanMs, m.Tests)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderRegression formats a regression warning for the terminal.
func RenderRegression(test string, pct float64) string {
	return warnStyle.Render(fmt.Sprintf("regression: %s is %.2f%% slower than the previous run", test, pct))
}
