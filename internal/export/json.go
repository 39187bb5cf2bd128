package export

import (
	"encoding/json"
	"fmt"

	"github.com/dusk-indust/vhdldot/internal/hdl"
)

// EntityExport is the JSON document written for -format json.
type EntityExport struct {
	Name    string   `json:"name"`
	Source  string   `json:"source,omitempty"`
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
	Height  int      `json:"height"`
}

// ExportEntity builds the JSON export of e, including the node height the DOT
// renderer would use with style.
func ExportEntity(e *hdl.Entity, style Style) *EntityExport {
	return &EntityExport{
		Name:    e.Name,
		Source:  e.Source,
		Inputs:  names(e.Inputs()),
		Outputs: names(e.Outputs()),
		Height:  NodeHeight(e, style),
	}
}

// GenerateJSON renders the export of e as indented JSON.
func GenerateJSON(e *hdl.Entity, style Style) (string, error) {
	out, err := json.MarshalIndent(ExportEntity(e, style), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON: %w", err)
	}
	return string(out) + "\n", nil
}

func names(ports []hdl.Port) []string {
	out := make([]string, len(ports))
	for i, p := range ports {
		out[i] = p.Name
	}
	return out
}
