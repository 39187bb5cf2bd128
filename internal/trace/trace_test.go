package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_PreservesOrder(t *testing.T) {
	input := "first\r\nsecond\n\nthird"
	lines, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "", "third"}, lines)
}

func TestRead_Empty(t *testing.T) {
	lines, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFilter(t *testing.T) {
	lines := []string{
		"design_file: 0x1",
		"  entity_declaration: 0x2 'counter'",
		"    parent: 0x2 entity_declaration",
		"  interface_signal_declaration: 0x3 'clk'",
		"    has_mode: true",
		"    mode: in",
		"    type_mark: 0x4",
	}

	got := Filter(lines)
	assert.Equal(t, []string{
		"  entity_declaration: 0x2 'counter'",
		"  interface_signal_declaration: 0x3 'clk'",
		"    mode: in",
	}, got)
}

func TestFilter_NamesContainingNoiseKeys(t *testing.T) {
	lines := []string{
		"  entity_declaration: 0x2 'parent_bus'",
		"    parent: 0x1 design_unit",
		"    interface_signal_declaration: 0x3 'transparent'",
		"      parent: 0x2 entity_declaration",
		"      has_mode: true",
		"      mode: in",
		"    interface_signal_declaration: 0x4 'has_mode_q'",
		"      mode: out",
	}

	got := Filter(lines)
	assert.Equal(t, []string{
		"  entity_declaration: 0x2 'parent_bus'",
		"    interface_signal_declaration: 0x3 'transparent'",
		"      mode: in",
		"    interface_signal_declaration: 0x4 'has_mode_q'",
		"      mode: out",
	}, got)
}

func TestRecordKey(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"  entity_declaration: 0x2 'counter'", "entity_declaration"},
		{"entity_declaration ... 'COUNTER'", "entity_declaration"},
		{"\tmode: in", "mode"},
		{"has_mode: true", "has_mode"},
		{"mode_view_declaration: 0x9", "mode_view_declaration"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RecordKey(tt.line))
		})
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"mode: out", true},
		{"has_mode: true", false},
		{"parent: entity_declaration", false},
		{"library_clause: 'ieee'", false},
		{"subtype_indication: 0x5 'mode_t'", false},
		{"interface_signal_declaration: 0x3 'transparent'", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Relevant(tt.line))
		})
	}
}
