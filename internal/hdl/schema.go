// Package hdl models a hardware entity's port interface and recovers it from
// ghdl trace lines.
package hdl

import "strings"

// Direction is the signal flow of a port relative to its entity.
type Direction string

const (
	DirIn  Direction = "in"
	DirOut Direction = "out"
)

// Directions lists the supported directions in rendering order.
var Directions = []Direction{DirIn, DirOut}

// ParseDirection maps a mode token to a Direction. Tokens other than "in"
// and "out" (inout, buffer, linkage) are not modelled.
func ParseDirection(token string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(token))) {
	case DirIn:
		return DirIn, true
	case DirOut:
		return DirOut, true
	}
	return "", false
}

// Port is one named signal of an entity.
type Port struct {
	Name string `json:"name"`
}

// Entity is a hardware module interface. Port slices keep declaration order.
type Entity struct {
	Name   string               `json:"name"`
	Ports  map[Direction][]Port `json:"ports"`
	Source string               `json:"source,omitempty"`
}

// NewEntity returns an entity with its name canonicalized to upper case and
// empty port lists for every direction.
func NewEntity(name, source string) *Entity {
	return &Entity{
		Name:   strings.ToUpper(name),
		Ports:  map[Direction][]Port{DirIn: {}, DirOut: {}},
		Source: source,
	}
}

// AddPort appends a copy of p to the ports of direction dir.
func (e *Entity) AddPort(dir Direction, p Port) {
	e.Ports[dir] = append(e.Ports[dir], p)
}

// Inputs returns the input ports in declaration order.
func (e *Entity) Inputs() []Port { return e.Ports[DirIn] }

// Outputs returns the output ports in declaration order.
func (e *Entity) Outputs() []Port { return e.Ports[DirOut] }

// PortCount is the number of ports over all directions.
func (e *Entity) PortCount() int {
	n := 0
	for _, ports := range e.Ports {
		n += len(ports)
	}
	return n
}

// MaxSide is the port count of the larger side.
func (e *Entity) MaxSide() int {
	return max(len(e.Inputs()), len(e.Outputs()))
}
