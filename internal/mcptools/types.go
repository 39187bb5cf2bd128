package mcptools

import "github.com/dusk-indust/vhdldot/internal/export"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ExtractEntityInput is the input for the extract_entity MCP tool.
type ExtractEntityInput struct {
	Path          string `json:"path,omitempty" jsonschema:"VHDL file to analyze with ghdl"`
	Trace         string `json:"trace,omitempty" jsonschema:"raw ghdl -s -dp output to parse instead of running ghdl"`
	RepeatedModes bool   `json:"repeatedModes,omitempty" jsonschema:"attach a port to every consecutive mode record"`
}

// ExtractEntityOutput is the result of the extract_entity MCP tool.
type ExtractEntityOutput struct {
	Found  bool                `json:"found"`
	Entity export.EntityExport `json:"entity"`
}

// RenderGraphInput is the input for the render_graph MCP tool.
type RenderGraphInput struct {
	Path          string `json:"path,omitempty" jsonschema:"VHDL file to analyze with ghdl"`
	Trace         string `json:"trace,omitempty" jsonschema:"raw ghdl -s -dp output to parse instead of running ghdl"`
	Format        string `json:"format,omitempty" jsonschema:"output format: dot, mermaid or json (default: dot)"`
	RepeatedModes bool   `json:"repeatedModes,omitempty" jsonschema:"attach a port to every consecutive mode record"`
}

// RenderGraphOutput is the result of the render_graph MCP tool.
type RenderGraphOutput struct {
	Found  bool   `json:"found"`
	Format string `json:"format"`
	Output string `json:"output"`
}
