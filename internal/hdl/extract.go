package hdl

import "regexp"

var (
	// Matches: "entity_declaration: 0x7f... 'counter'"
	entityRegex = regexp.MustCompile(`^.*entity_declaration.*'(.*)'`)
	// Matches: "interface_signal_declaration: 0x7f... 'clk'"
	signalRegex = regexp.MustCompile(`^.*interface_signal_declaration.*'(.*)'`)
	// Matches: "    mode: in"
	modeRegex = regexp.MustCompile(`^\s*mode:\s+(\S+)`)
)

// extractState names where the accumulator is between lines.
type extractState int

const (
	stateNoEntity extractState = iota
	stateBuilding
	statePortPending
)

// accumulator is the value folded over the trace. It is replaced, never
// shared, on each step.
type accumulator struct {
	state  extractState
	entity *Entity
	// pending is the last interface signal whose mode has not been consumed.
	// It may be set while state is stateNoEntity (an orphan port).
	pending *Port
}

type options struct {
	source        string
	repeatedModes bool
}

// Option configures Extract.
type Option func(*options)

// WithSource records the originating file path on the extracted entity.
func WithSource(path string) Option {
	return func(o *options) { o.source = path }
}

// WithRepeatedModes keeps a port pending after its mode record, so that
// consecutive mode records attach the same port to several directions.
// Off by default: each port receives exactly one direction.
func WithRepeatedModes(enabled bool) Option {
	return func(o *options) { o.repeatedModes = enabled }
}

// Extract scans lines in order and returns the last entity declared in them
// with the ports declared after it. Unrecognized lines, mode records without
// a pending port and ports without an entity are ignored. found is false when
// no entity declaration was seen.
func Extract(lines []string, opts ...Option) (entity *Entity, found bool) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	acc := accumulator{state: stateNoEntity}
	for _, line := range lines {
		acc = step(acc, line, o)
	}

	if acc.entity == nil {
		return nil, false
	}
	return acc.entity, true
}

// step applies a single line to acc.
func step(acc accumulator, line string, o options) accumulator {
	if m := entityRegex.FindStringSubmatch(line); m != nil {
		return accumulator{state: stateBuilding, entity: NewEntity(m[1], o.source)}
	}

	if m := signalRegex.FindStringSubmatch(line); m != nil {
		acc.pending = &Port{Name: m[1]}
		if acc.state != stateNoEntity {
			acc.state = statePortPending
		}
		return acc
	}

	m := modeRegex.FindStringSubmatch(line)
	if m == nil || acc.state != statePortPending {
		return acc
	}
	dir, ok := ParseDirection(m[1])
	if !ok {
		return acc
	}

	acc.entity.AddPort(dir, *acc.pending)
	if !o.repeatedModes {
		acc.pending = nil
		acc.state = stateBuilding
	}
	return acc
}
