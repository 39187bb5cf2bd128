package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dusk-indust/vhdldot/internal/hdl"
)

// Style holds the presentation attributes of a rendered entity graph. None of
// them are derived from the entity.
type Style struct {
	Splines  string  `yaml:"splines,omitempty"`
	RankDir  string  `yaml:"rankdir,omitempty"`
	Shape    string  `yaml:"shape,omitempty"`
	FontName string  `yaml:"fontname,omitempty"`
	Width    float64 `yaml:"width,omitempty"`
	FontSize int     `yaml:"fontsize,omitempty"`

	// MinHeight floors the entity node height. Nil takes the default; an
	// explicit 0 keeps the unclamped height of single-port entities.
	MinHeight *int `yaml:"minHeight,omitempty"`
}

// DefaultStyle returns orthogonal left-to-right routing with monospace record
// nodes.
func DefaultStyle() Style {
	return Style{
		Splines:   "ortho",
		RankDir:   "LR",
		Shape:     "record",
		FontName:  "monospace",
		Width:     2,
		FontSize:  20,
		MinHeight: IntPtr(1),
	}
}

// IntPtr returns a pointer to n, for setting Style.MinHeight.
func IntPtr(n int) *int {
	return &n
}

// Merge returns s with every zero field taken from def.
func (s Style) Merge(def Style) Style {
	if s.Splines == "" {
		s.Splines = def.Splines
	}
	if s.RankDir == "" {
		s.RankDir = def.RankDir
	}
	if s.Shape == "" {
		s.Shape = def.Shape
	}
	if s.FontName == "" {
		s.FontName = def.FontName
	}
	if s.Width == 0 {
		s.Width = def.Width
	}
	if s.FontSize == 0 {
		s.FontSize = def.FontSize
	}
	if s.MinHeight == nil {
		s.MinHeight = def.MinHeight
	}
	return s
}

// NodeHeight is the entity node height: one unit per port on the larger side
// beyond the first, never below style.MinHeight (or 0 when it is unset).
func NodeHeight(e *hdl.Entity, style Style) int {
	floor := 0
	if style.MinHeight != nil {
		floor = max(*style.MinHeight, 0)
	}
	return max(e.MaxSide()-1, floor)
}

// dotKeywords are reserved by the DOT grammar and matched case-insensitively.
var dotKeywords = map[string]bool{
	"node":     true,
	"edge":     true,
	"graph":    true,
	"digraph":  true,
	"subgraph": true,
	"strict":   true,
}

var plainIDRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dotID returns name as a DOT identifier, double-quoted when it is a keyword
// or not a plain alphanumeric ID.
func dotID(name string) string {
	if plainIDRegex.MatchString(name) && !dotKeywords[strings.ToLower(name)] {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}

// GenerateDOT renders e as a Graphviz digraph. Inputs point into the entity
// node and the entity node points at its outputs, each side in declaration
// order. Output is byte-identical for equal entities and styles.
func GenerateDOT(e *hdl.Entity, style Style) string {
	var sb strings.Builder

	entityID := dotID(e.Name)

	fmt.Fprintf(&sb, "digraph %s {\n", entityID)
	fmt.Fprintf(&sb, "    graph [ splines=%s, rankdir=%s];\n", style.Splines, style.RankDir)
	fmt.Fprintf(&sb, "    node [ shape=%s, fontname=%q];\n", style.Shape, style.FontName)
	sb.WriteString("    compound=true;\n")
	fmt.Fprintf(&sb, "    %s [ label=%q, height=%d, width=%s, fontsize=%d ];\n",
		entityID, e.Name, NodeHeight(e, style), formatFloat(style.Width), style.FontSize)

	for _, p := range e.Inputs() {
		id := dotID(p.Name)
		fmt.Fprintf(&sb, "    %s [ shape=plaintext ];\n", id)
		fmt.Fprintf(&sb, "    %s -> %s;\n", id, entityID)
	}
	for _, p := range e.Outputs() {
		id := dotID(p.Name)
		fmt.Fprintf(&sb, "    %s [ shape=plaintext ];\n", id)
		fmt.Fprintf(&sb, "    %s -> %s;\n", entityID, id)
	}

	sb.WriteString("}\n")
	return sb.String()
}

// formatFloat prints the shortest representation, so 2 renders as "2".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
