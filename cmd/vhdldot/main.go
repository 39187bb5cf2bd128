package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dusk-indust/vhdldot/internal/config"
	"github.com/dusk-indust/vhdldot/internal/export"
	"github.com/dusk-indust/vhdldot/internal/ghdl"
	"github.com/dusk-indust/vhdldot/internal/mcptools"
	"github.com/dusk-indust/vhdldot/internal/pipeline"
)

// CLI flags parsed from command line.
type cliFlags struct {
	OutputDir     string
	Format        string
	ConfigPath    string
	GHDL          string
	Timeout       time.Duration
	Parallelism   int
	RepeatedModes bool
	Strict        bool
	Verbose       bool
	ServeMCP      bool
	Version       bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("vhdldot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: vhdldot [flags] <file.vhd> [more.vhd ...]")
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.OutputDir, "o", "", "output directory (default: stdout)")
	fs.StringVar(&flags.OutputDir, "output", "", "output directory (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: dot, mermaid or json (default dot)")
	fs.StringVar(&flags.ConfigPath, "config", "", "path to vhdldot.yml (default: ./vhdldot.yml if present)")
	fs.StringVar(&flags.GHDL, "ghdl", "", "ghdl binary (default \"ghdl\")")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "per-file ghdl timeout (0 disables)")
	fs.IntVar(&flags.Parallelism, "j", 0, "files analyzed in parallel (default: number of CPUs)")
	fs.BoolVar(&flags.RepeatedModes, "repeated-modes", false, "attach one port to every consecutive mode record")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when a file declares no entity")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as an MCP server on stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags)

	log.SetOutput(io.Discard)
	if cfg.Verbose {
		log.SetOutput(stderr)
	}

	pcfg, err := pipelineConfig(cfg)
	if err != nil {
		return err
	}
	tool := ghdl.NewTool(cfg.GHDL, cfg.GHDLArgs, cfg.Timeout)

	if flags.ServeMCP {
		server := mcptools.NewConvertMCPServer(mcptools.NewConvertService(tool, pcfg))
		return mcptools.RunStdio(ctx, server)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing input file")
	}

	_, err = pipeline.NewPipeline(tool, pcfg, stdout).Run(ctx, fs.Args())
	return err
}

// loadConfig reads the explicit config path, or vhdldot.yml in the working
// directory when none is given.
func loadConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

// applyFlags overrides config file values with flags set on the command line.
func applyFlags(cfg *config.ProjectConfig, flags cliFlags) {
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		cfg.Format = flags.Format
	}
	if flags.GHDL != "" {
		cfg.GHDL = flags.GHDL
	}
	if flags.Timeout != 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.Parallelism != 0 {
		cfg.Parallelism = flags.Parallelism
	}
	cfg.RepeatedModes = cfg.RepeatedModes || flags.RepeatedModes
	cfg.Strict = cfg.Strict || flags.Strict
	cfg.Verbose = cfg.Verbose || flags.Verbose
}

func pipelineConfig(cfg *config.ProjectConfig) (pipeline.Config, error) {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return pipeline.Config{}, err
	}
	return pipeline.Config{
		Format:        format,
		Style:         cfg.Style,
		OutputDir:     cfg.OutputDir,
		RepeatedModes: cfg.RepeatedModes,
		Strict:        cfg.Strict,
		Parallelism:   cfg.Parallelism,
	}, nil
}
