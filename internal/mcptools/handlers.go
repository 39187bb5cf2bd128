package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/dusk-indust/vhdldot/internal/export"
	"github.com/dusk-indust/vhdldot/internal/ghdl"
	"github.com/dusk-indust/vhdldot/internal/hdl"
	"github.com/dusk-indust/vhdldot/internal/pipeline"
	"github.com/dusk-indust/vhdldot/internal/trace"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ConvertService holds the ghdl dumper and defaults used by MCP tool handlers.
type ConvertService struct {
	dumper ghdl.Dumper
	cfg    pipeline.Config
}

// NewConvertService creates a ConvertService. cfg supplies defaults that tool
// inputs may override.
func NewConvertService(dumper ghdl.Dumper, cfg pipeline.Config) *ConvertService {
	return &ConvertService{dumper: dumper, cfg: cfg}
}

// traceLines returns the filtered trace for a tool call, either parsed from
// the inline trace or produced by running ghdl on path.
func (s *ConvertService) traceLines(ctx context.Context, path, raw string) ([]string, error) {
	if raw != "" {
		lines, err := trace.Read(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("read trace: %w", err)
		}
		return trace.Filter(lines), nil
	}
	if path == "" {
		return nil, fmt.Errorf("either path or trace is required")
	}
	return s.dumper.Dump(ctx, path)
}

// ExtractEntity recovers the entity interface from a VHDL file or trace.
func (s *ConvertService) ExtractEntity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractEntityInput,
) (*mcp.CallToolResult, ExtractEntityOutput, error) {
	lines, err := s.traceLines(ctx, input.Path, input.Trace)
	if err != nil {
		return nil, ExtractEntityOutput{}, err
	}

	entity, found := hdl.Extract(lines,
		hdl.WithSource(input.Path),
		hdl.WithRepeatedModes(s.cfg.RepeatedModes || input.RepeatedModes),
	)
	if !found {
		return nil, ExtractEntityOutput{
			Entity: export.EntityExport{Inputs: []string{}, Outputs: []string{}},
		}, nil
	}

	style := s.cfg.Style.Merge(export.DefaultStyle())
	return nil, ExtractEntityOutput{
		Found:  true,
		Entity: *export.ExportEntity(entity, style),
	}, nil
}

// RenderGraph renders the entity of a VHDL file or trace in the requested
// format.
func (s *ConvertService) RenderGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderGraphInput,
) (*mcp.CallToolResult, RenderGraphOutput, error) {
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return nil, RenderGraphOutput{}, err
	}
	if input.Format == "" && s.cfg.Format != "" {
		format = s.cfg.Format
	}

	lines, err := s.traceLines(ctx, input.Path, input.Trace)
	if err != nil {
		return nil, RenderGraphOutput{}, err
	}

	cfg := s.cfg
	cfg.RepeatedModes = cfg.RepeatedModes || input.RepeatedModes
	cfg.Format = format

	res, err := pipeline.Convert(lines, input.Path, cfg)
	if err != nil {
		return nil, RenderGraphOutput{}, err
	}

	return nil, RenderGraphOutput{
		Found:  res.Found,
		Format: string(format),
		Output: res.Output,
	}, nil
}
