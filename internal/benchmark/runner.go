package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner runs the Go benchmark workloads and returns the raw tool output.
type Runner interface {
	Run(ctx context.Context, packagePath string) (string, error)
}

// GoRunner implements Runner using the 'go test' command.
type GoRunner struct{}

func NewGoRunner() *GoRunner {
	return &GoRunner{}
}

func (r *GoRunner) Run(ctx context.Context, packagePath string) (string, error) {
	// go test -bench=. -benchmem -run=^$ <packagePath>
	args := []string{"test", "-bench=.", "-benchmem", "-run=^$", packagePath}
	cmd := exec.CommandContext(ctx, "go", args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("benchmark execution failed: %w\nOutput:\n%s", err, out.String())
	}
	return out.String(), nil
}
