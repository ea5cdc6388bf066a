package model

// DependencyOptions carries the per-child selection knobs the Composition
// Instantiator consults: currently just optionality (an optional
// child whose selection resolves to an abstract proxy is dropped from the
// instantiated graph, per the Composition Instantiator's contract).
type DependencyOptions struct {
	Optional bool
}

// CompositionChild is one named slot inside a composition: a child name,
// the set of models the child must satisfy, and its dependency options.
// Invariant (enforced by internal/dsel's ComponentModelFor, which fails
// with IncompatibleComponentModels otherwise): merging RequiredModels must
// yield a consistent set — no two concrete task classes unrelated by
// subtyping.
type CompositionChild struct {
	Name           string
	RequiredModels []string
	Options        DependencyOptions
}

// PortPolicy describes the connection policy attached to an edge: transport
// characteristics that ride along a wired connection (buffering, type of
// delivery, etc.) rather than affecting the data-flow topology itself.
type PortPolicy struct {
	Kind       string
	BufferSize int
}

// Connection is one explicit wiring declared inside a composition: an
// output port on one child feeding an input port on another, carrying a
// policy.
type Connection struct {
	FromChild string
	FromPort  string
	ToChild   string
	ToPort    string
	Policy    PortPolicy
}

// ExportedPort forwards a child's port to the composition's own boundary,
// so external consumers of the composition's port transparently see the
// child's stream.
type ExportedPort struct {
	Name      string
	Direction Direction
	ChildName string
	ChildPort string
}

// Specialization is a table entry mapping a set of per-child model
// selections to a more specific composition model. Matching is a plain
// lookup, never dynamic code generation (spec.md §9 design note).
type Specialization struct {
	// Selections maps a child name to the model name that must have been
	// selected for this specialization to apply.
	Selections  map[string]string
	Specialized string
}

// Matches reports whether every entry in s.Selections agrees with the given
// child->model selection map. A specialization with no selections never
// matches (it would be a no-op specialization).
func (s Specialization) Matches(childSelections map[string]string) bool {
	if len(s.Selections) == 0 {
		return false
	}
	for child, model := range s.Selections {
		if childSelections[child] != model {
			return false
		}
	}
	return true
}

// CompositionModel is a named group of children wired together by explicit
// connections, with optional autoconnect filling gaps and optional exported
// ports forwarding a child's stream to the composition boundary.
type CompositionModel struct {
	Name            string
	Provenance      *Provenance
	Children        []CompositionChild
	Connections     []Connection
	Exports         []ExportedPort
	Specializations []Specialization
	Fulfills        []FulfillsEdge
}

func (c *CompositionModel) ModelName() string           { return c.Name }
func (c *CompositionModel) ModelProvenance() *Provenance { return c.Provenance }

// ModelPorts returns the composition's exported boundary ports, derived
// from its Exports declarations plus the direction each export carries.
func (c *CompositionModel) ModelPorts() []Port {
	ports := make([]Port, 0, len(c.Exports))
	for _, exp := range c.Exports {
		ports = append(ports, Port{Name: exp.Name, Direction: exp.Direction})
	}
	return ports
}

func (c *CompositionModel) DeclaredFulfills() []FulfillsEdge { return c.Fulfills }

// ChildByName returns the composition child with the given name, or false
// if no such child is declared.
func (c *CompositionModel) ChildByName(name string) (CompositionChild, bool) {
	for _, child := range c.Children {
		if child.Name == name {
			return child, true
		}
	}
	return CompositionChild{}, false
}

var _ ComponentModel = (*CompositionModel)(nil)
