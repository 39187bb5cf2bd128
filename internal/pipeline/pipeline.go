// Package pipeline wires the ghdl dump, entity extraction, rendering and
// output sinks together for one or more VHDL files.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/vhdldot/internal/export"
	"github.com/dusk-indust/vhdldot/internal/ghdl"
	"github.com/dusk-indust/vhdldot/internal/hdl"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoEntity is returned in strict mode for inputs without an entity.
	ErrNoEntity = errors.New("no entity found")

	// ErrOutputCollision is returned when two inputs would write the same
	// output file, e.g. a/x.vhd and b/x.vhd with -o.
	ErrOutputCollision = errors.New("output path collision")
)

// Result is the outcome of converting one input file.
type Result struct {
	// Path is the input file.
	Path string

	// Entity is nil when Found is false.
	Entity *hdl.Entity
	Found  bool

	// Output is the rendered document, empty when Found is false.
	Output string

	// OutputPath is the file written, empty for stdout or skipped inputs.
	OutputPath string
}

// Pipeline converts VHDL files into graph documents.
type Pipeline struct {
	dumper ghdl.Dumper
	cfg    Config
	stdout io.Writer
}

// NewPipeline creates a Pipeline. Documents for stdout are written to out.
func NewPipeline(dumper ghdl.Dumper, cfg Config, out io.Writer) *Pipeline {
	if out == nil {
		out = os.Stdout
	}
	return &Pipeline{dumper: dumper, cfg: cfg.withDefaults(), stdout: out}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Convert extracts and renders an entity from already filtered trace lines.
// source is recorded on the entity. A trace without an entity yields a Result
// with Found false and no error.
func Convert(lines []string, source string, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	res := &Result{Path: source}

	entity, found := hdl.Extract(lines,
		hdl.WithSource(source),
		hdl.WithRepeatedModes(cfg.RepeatedModes),
	)
	if !found {
		return res, nil
	}

	out, err := export.Render(entity, cfg.Format, cfg.Style)
	if err != nil {
		return nil, err
	}
	res.Entity = entity
	res.Found = true
	res.Output = out
	return res, nil
}

// Process dumps and converts a single file without writing anything.
func (p *Pipeline) Process(ctx context.Context, path string) (*Result, error) {
	lines, err := p.dumper.Dump(ctx, path)
	if err != nil {
		return nil, err
	}

	res, err := Convert(lines, path, p.cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: render %s: %w", path, err)
	}

	if !res.Found {
		if p.cfg.Strict {
			return nil, fmt.Errorf("pipeline: %s: %w", path, ErrNoEntity)
		}
		log.Printf("pipeline: no entity in %s; skipped", path)
		return res, nil
	}

	log.Printf("pipeline: %s -> entity %s (%d in, %d out)",
		path, res.Entity.Name, len(res.Entity.Inputs()), len(res.Entity.Outputs()))
	return res, nil
}

// Run processes every path with bounded parallelism and then writes the
// rendered documents in input order. The first failure cancels the remaining
// tool invocations and nothing is written. Nothing is written either when two
// inputs share an output path.
func (p *Pipeline) Run(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Parallelism)

	for i, path := range paths {
		g.Go(func() error {
			res, err := p.Process(gctx, path)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.checkCollisions(results); err != nil {
		return nil, err
	}

	for i := range results {
		if err := p.write(&results[i]); err != nil {
			return results, err
		}
	}
	return results, nil
}

// checkCollisions rejects a run in which two found results map to the same
// output file. Inputs without an entity write nothing and never collide.
func (p *Pipeline) checkCollisions(results []Result) error {
	if p.cfg.OutputDir == "" {
		return nil
	}
	seen := make(map[string]string, len(results))
	for _, res := range results {
		if !res.Found {
			continue
		}
		path := OutputPath(p.cfg.OutputDir, res.Path, p.cfg.Format)
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("pipeline: %s and %s both write %s: %w", prev, res.Path, path, ErrOutputCollision)
		}
		seen[path] = res.Path
	}
	return nil
}

// write sends a found result to its sink and records the file path.
func (p *Pipeline) write(res *Result) error {
	if !res.Found {
		return nil
	}
	if p.cfg.OutputDir == "" {
		_, err := io.WriteString(p.stdout, res.Output)
		return err
	}

	path := OutputPath(p.cfg.OutputDir, res.Path, p.cfg.Format)
	if err := writeOutputFile(path, res.Output); err != nil {
		return err
	}
	res.OutputPath = path
	log.Printf("pipeline: wrote %s", path)
	return nil
}

// OutputPath joins dir with the base name of input, its extension replaced by
// the format's ("rtl/counter.vhd" -> "<dir>/counter.dot").
func OutputPath(dir, input string, format export.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+format.Ext())
}

// writeOutputFile writes content to the given path, creating directories as
// needed.
func writeOutputFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
