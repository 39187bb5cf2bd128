// Package ghdl runs the GHDL analyzer to obtain the syntax tree dump of a
// VHDL file.
package ghdl

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/dusk-indust/vhdldot/internal/trace"
)

// DefaultArgs asks ghdl to analyze syntax only and dump the parse tree.
var DefaultArgs = []string{"-s", "-dp"}

// Dumper produces the filtered trace lines for one source file.
// Implementations: Tool (production), stubs in tests.
type Dumper interface {
	Dump(ctx context.Context, path string) ([]string, error)
}

// Compile-time assertion: *Tool satisfies Dumper.
var _ Dumper = (*Tool)(nil)

// Tool invokes a ghdl binary as a subprocess.
type Tool struct {
	// Binary is the executable name or path. Defaults to "ghdl".
	Binary string

	// Args precede the source path on the command line. Defaults to DefaultArgs.
	Args []string

	// Timeout bounds a single invocation. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// NewTool returns a Tool for binary, falling back to defaults for empty values.
func NewTool(binary string, args []string, timeout time.Duration) *Tool {
	if binary == "" {
		binary = "ghdl"
	}
	if len(args) == 0 {
		args = DefaultArgs
	}
	return &Tool{Binary: binary, Args: args, Timeout: timeout}
}

// Dump runs the tool on path and returns the relevant dump lines in order.
// A non-zero exit is an error carrying the tool's stderr.
func (t *Tool) Dump(ctx context.Context, path string) ([]string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, t.Args...), path)
	cmd := exec.CommandContext(ctx, t.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Printf("ghdl: running %s %s", t.Binary, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("ghdl: %s: %w: %s", path, err, msg)
		}
		return nil, fmt.Errorf("ghdl: %s: %w", path, err)
	}

	lines, err := trace.Read(&stdout)
	if err != nil {
		return nil, fmt.Errorf("ghdl: read dump of %s: %w", path, err)
	}
	return trace.Filter(lines), nil
}
