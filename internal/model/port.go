package model

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Direction is the flow direction of a Port.
type Direction int

const (
	// In is an input port: it receives a stream of values.
	In Direction = iota
	// Out is an output port: it produces a stream of values.
	Out
)

// String returns the human-readable direction name.
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "unknown"
	}
}

// Opposite returns the direction that can connect to this one.
func (d Direction) Opposite() Direction {
	if d == In {
		return Out
	}
	return In
}

// Port is a single, typed connection point owned by a component model.
// Two ports can connect only when their directions are opposite and their
// types are equal or convertible via the known typekit (see Compatible).
type Port struct {
	Name      string
	Direction Direction
	Type      cty.Type
}

// Compatible reports whether an output port can feed the given input port:
// directions must be opposite and types must be equal, or the output type
// must be convertible to the input type via go-cty's conversion rules (the
// "known typekit" the spec refers to in the abstract).
func (p Port) Compatible(other Port) bool {
	if p.Direction == other.Direction {
		return false
	}

	out, in := p, other
	if p.Direction == In {
		out, in = other, p
	}

	if out.Type.Equals(in.Type) {
		return true
	}

	_, err := convert.Convert(cty.UnknownVal(out.Type), in.Type)
	return err == nil
}

// PortMapping renames a service's (or a more-general component's) abstract
// port names to the concrete names used by a fulfilling model. A nil or
// empty mapping means "names are identical."
type PortMapping map[string]string

// Map looks up the concrete name for an abstract port name, falling back to
// the abstract name itself when no explicit rename is registered.
func (m PortMapping) Map(abstractName string) string {
	if mapped, ok := m[abstractName]; ok {
		return mapped
	}
	return abstractName
}

// Compose returns the mapping obtained by applying `m` and then `next` in
// sequence: Compose(next).Map(x) == next.Map(m.Map(x)). Used to build up
// port mappings across multi-hop fulfillment chains.
func (m PortMapping) Compose(next PortMapping) PortMapping {
	out := make(PortMapping, len(m))
	for k := range m {
		out[k] = next.Map(m.Map(k))
	}
	for k := range next {
		if _, exists := out[k]; !exists {
			out[k] = next.Map(k)
		}
	}
	return out
}
