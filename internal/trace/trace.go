// Package trace turns ghdl's debug dump into the ordered line sequence the
// entity extractor consumes.
package trace

import (
	"bufio"
	"io"
	"strings"
)

// recordKeys are the dump keys of the three record kinds the extractor
// understands. Back-references such as "parent: ... entity_declaration" and
// "has_mode: true" carry other keys and are dropped.
var recordKeys = map[string]bool{
	"entity_declaration":           true,
	"interface_signal_declaration": true,
	"mode":                         true,
}

// Read splits r into lines, stripping line terminators. Order is preserved.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	// ghdl dumps can carry long string literals on a single line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// Filter keeps only lines relevant to entity extraction.
func Filter(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if Relevant(line) {
			out = append(out, line)
		}
	}
	return out
}

// Relevant reports whether a single dump line survives Filter. Only the record
// key is inspected, so names such as 'transparent' or 'parent_bus' never
// affect the decision.
func Relevant(line string) bool {
	return recordKeys[RecordKey(line)]
}

// RecordKey returns the leading key of a dump line: the text before the first
// colon or blank, with indentation removed.
func RecordKey(line string) string {
	line = strings.TrimLeft(line, " \t")
	if i := strings.IndexAny(line, ": \t"); i >= 0 {
		return line[:i]
	}
	return line
}
