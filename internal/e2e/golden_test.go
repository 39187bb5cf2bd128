//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/dusk-indust/vhdldot/internal/ghdl"
	"github.com/dusk-indust/vhdldot/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// testdataDir returns the path to the repository testdata directory.
func testdataDir() string {
	return filepath.Join("..", "..", "testdata")
}

// goldenSources maps VHDL fixtures to golden DOT filenames.
var goldenSources = []struct {
	source string
	golden string
}{
	{"counter.vhd", "counter.dot"},
	{"alu.vhd", "alu.dot"},
}

// requireGHDL skips the test when no ghdl binary is installed.
func requireGHDL(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ghdl"); err != nil {
		t.Skip("ghdl not found in PATH")
	}
}

// convert runs the full pipeline on one fixture and returns the DOT text.
func convert(t *testing.T, source string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var out bytes.Buffer
	p := pipeline.NewPipeline(ghdl.NewTool("", nil, 0), pipeline.Config{}, &out)
	_, err := p.Run(ctx, []string{filepath.Join(testdataDir(), "vhdl", source)})
	require.NoError(t, err)
	return out.String()
}

// TestGolden compares the pipeline output against golden files. If golden files
// do not exist, the test is skipped with a message to run with -update.
func TestGolden(t *testing.T) {
	requireGHDL(t)

	for _, gs := range goldenSources {
		t.Run(gs.golden, func(t *testing.T) {
			goldenPath := filepath.Join(testdataDir(), "golden", gs.golden)
			golden, err := os.ReadFile(goldenPath)
			if os.IsNotExist(err) {
				t.Skipf("golden file %s not found; run with -update to generate", gs.golden)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, string(golden), convert(t, gs.source),
				"output for %s does not match golden file", gs.source)
		})
	}
}

// TestPackageOnlyFile checks that a file without an entity produces no output.
func TestPackageOnlyFile(t *testing.T) {
	requireGHDL(t)
	assert.Empty(t, convert(t, "pkg.vhd"))
}

// TestUpdateGolden regenerates golden files from the current pipeline output.
// Run with: go test -tags e2e -run TestUpdateGolden ./internal/e2e/ -update
func TestUpdateGolden(t *testing.T) {
	if !*update {
		t.Skip("skipping golden file update; run with -update flag")
	}
	requireGHDL(t)

	gDir := filepath.Join(testdataDir(), "golden")
	require.NoError(t, os.MkdirAll(gDir, 0o755))

	for _, gs := range goldenSources {
		err := os.WriteFile(filepath.Join(gDir, gs.golden), []byte(convert(t, gs.source)), 0o644)
		require.NoError(t, err)
		t.Logf("updated %s", gs.golden)
	}
}
