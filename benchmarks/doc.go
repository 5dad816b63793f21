// Package benchmarks holds the Golang document-creation workloads measured
// by the harness. The six benchmarks mirror the python-docx and Node.js
// docx suites so the per-test comparison lines up across platforms; their
// order matches the canonical test name list used by the output parser.
package benchmarks
