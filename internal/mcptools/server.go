package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewConvertMCPServer creates an MCP server with the extract_entity and
// render_graph tools registered.
func NewConvertMCPServer(svc *ConvertService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "vhdldot",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_entity",
		Description: "Recover the entity interface (name, input ports, output ports) of a VHDL file. Runs ghdl on path, or parses an inline ghdl -s -dp trace.",
	}, svc.ExtractEntity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_graph",
		Description: "Render the entity of a VHDL file or trace as a Graphviz DOT digraph, a Mermaid flowchart, or JSON.",
	}, svc.RenderGraph)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
