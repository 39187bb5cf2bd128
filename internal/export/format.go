// Package export renders an extracted entity into text documents.
package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/vhdldot/internal/hdl"
)

// Format selects the output document type.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDOT, FormatMermaid, FormatJSON:
		return f, nil
	case "":
		return FormatDOT, nil
	}
	return "", fmt.Errorf("unknown format %q (want dot, mermaid or json)", s)
}

// Ext is the file extension written for the format.
func (f Format) Ext() string {
	switch f {
	case FormatMermaid:
		return ".mmd"
	case FormatJSON:
		return ".json"
	}
	return ".dot"
}

// Render dispatches to the renderer for f.
func Render(e *hdl.Entity, f Format, style Style) (string, error) {
	switch f {
	case FormatDOT, "":
		return GenerateDOT(e, style), nil
	case FormatMermaid:
		return GenerateMermaid(e), nil
	case FormatJSON:
		return GenerateJSON(e, style)
	}
	return "", fmt.Errorf("unknown format %q", f)
}
