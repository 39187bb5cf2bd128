package pipeline

import (
	"runtime"

	"github.com/dusk-indust/vhdldot/internal/export"
)

// Config holds the settings that drive a conversion run.
type Config struct {
	// Format selects the rendered document type.
	Format export.Format

	// Style carries the graph presentation attributes.
	Style export.Style

	// OutputDir receives one file per input. Empty means write to stdout.
	OutputDir string

	// RepeatedModes lets one port take every consecutive mode record.
	RepeatedModes bool

	// Strict makes a file without an entity an error instead of a skip.
	Strict bool

	// Parallelism bounds concurrent tool invocations. Zero means NumCPU.
	Parallelism int
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.Format == "" {
		c.Format = export.FormatDOT
	}
	c.Style = c.Style.Merge(export.DefaultStyle())
	if c.Parallelism <= 0 {
		c.Parallelism = runtime.NumCPU()
	}
	return c
}
