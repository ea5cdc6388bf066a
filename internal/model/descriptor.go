package model

// Descriptor is the common shape of every catalog entry: it has a unique
// name and (optionally) provenance pointing back at its source manifest.
type Descriptor interface {
	ModelName() string
	ModelProvenance() *Provenance
}

// FulfillsEdge records that a model directly fulfills another named model
// (a data service or a more general component), with the port mapping
// needed to translate between the two. Transitive closure over these edges
// is computed by internal/catalog, not here — a single model only knows
// its own direct declarations.
type FulfillsEdge struct {
	Target  string
	Mapping PortMapping
}

// ComponentModel is implemented by every model kind that has ports and can
// participate in the fulfills partial order: TaskContextModel,
// DataServiceModel, and CompositionModel. DeploymentModel does not — a
// deployment is a physical slot catalog, not a component.
type ComponentModel interface {
	Descriptor
	ModelPorts() []Port
	DeclaredFulfills() []FulfillsEdge
}
