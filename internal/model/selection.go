package model

// SelectionKind discriminates the polymorphic selection value DIR maps
// keys to (spec.md §9, "Polymorphic `selection value`").
type SelectionKind int

const (
	// SelectionNil is the empty selection (nothing chosen yet).
	SelectionNil SelectionKind = iota
	// SelectionName is an unresolved string name, still to be looked up.
	SelectionName
	// SelectionComponentModel references a concrete TaskContextModel or
	// CompositionModel by name.
	SelectionComponentModel
	// SelectionDataServiceModel references a DataServiceModel by name.
	SelectionDataServiceModel
	// SelectionBoundService references a specific service on a specific
	// component: "this component, through this one of its services."
	SelectionBoundService
	// SelectionRequirements carries a full InstanceRequirements value.
	SelectionRequirements
)

// BoundService names one service (a DataServiceModel) as provided by one
// specific component model instance.
type BoundService struct {
	ComponentModel string
	ServiceModel   string
}

// Selection is the tagged variant DIR's explicit and default mappings carry
// as values: a string name, a concrete component model, a data-service
// model, a bound service, a full requirements set, or nil.
type Selection struct {
	kind         SelectionKind
	name         string
	modelName    string
	bound        BoundService
	requirements *InstanceRequirements
}

// NilSelection returns the empty selection.
func NilSelection() Selection { return Selection{} }

// NameSelection wraps an unresolved string name.
func NameSelection(name string) Selection {
	return Selection{kind: SelectionName, name: name}
}

// ComponentModelSelection wraps a concrete component model name.
func ComponentModelSelection(modelName string) Selection {
	return Selection{kind: SelectionComponentModel, modelName: modelName}
}

// DataServiceModelSelection wraps a data-service model name.
func DataServiceModelSelection(modelName string) Selection {
	return Selection{kind: SelectionDataServiceModel, modelName: modelName}
}

// BoundServiceSelection wraps a component bound through one of its
// services.
func BoundServiceSelection(b BoundService) Selection {
	return Selection{kind: SelectionBoundService, bound: b}
}

// RequirementsSelection wraps a full requirements set.
func RequirementsSelection(r InstanceRequirements) Selection {
	return Selection{kind: SelectionRequirements, requirements: &r}
}

func (s Selection) Kind() SelectionKind   { return s.kind }
func (s Selection) IsNil() bool           { return s.kind == SelectionNil }
func (s Selection) Name() string          { return s.name }
func (s Selection) ModelName() string     { return s.modelName }
func (s Selection) Bound() BoundService   { return s.bound }

// Requirements returns the wrapped requirements set and true, or the zero
// value and false if this selection isn't a SelectionRequirements.
func (s Selection) Requirements() (InstanceRequirements, bool) {
	if s.kind != SelectionRequirements || s.requirements == nil {
		return InstanceRequirements{}, false
	}
	return *s.requirements, true
}

// AsKey reinterprets a resolved selection as a DIR key, used when following
// a chain during recursive resolution (a value that is itself a key in the
// mapping gets replaced by its value). Only SelectionName and
// SelectionComponentModel/SelectionDataServiceModel selections can act as
// keys; everything else returns false.
func (s Selection) AsKey() (Key, bool) {
	switch s.kind {
	case SelectionName:
		return NameKey(s.name), true
	case SelectionComponentModel, SelectionDataServiceModel:
		return ModelKey(s.modelName), true
	default:
		return Key{}, false
	}
}

// Equal reports whether two selections carry the same variant and content.
// Requirements are compared by pointer identity of their wrapped value
// being deep-equal field by field is unnecessary for DIR's purposes (cycle
// detection only ever compares against keys, not arbitrary requirements),
// so requirements selections compare equal only by reference.
func (s Selection) Equal(other Selection) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case SelectionNil:
		return true
	case SelectionName:
		return s.name == other.name
	case SelectionComponentModel, SelectionDataServiceModel:
		return s.modelName == other.modelName
	case SelectionBoundService:
		return s.bound == other.bound
	case SelectionRequirements:
		return s.requirements == other.requirements
	default:
		return false
	}
}

// String returns a diagnostic representation of the selection.
func (s Selection) String() string {
	switch s.kind {
	case SelectionNil:
		return "<nil>"
	case SelectionName:
		return "name:" + s.name
	case SelectionComponentModel:
		return "component:" + s.modelName
	case SelectionDataServiceModel:
		return "service:" + s.modelName
	case SelectionBoundService:
		return "bound:" + s.bound.ComponentModel + "/" + s.bound.ServiceModel
	case SelectionRequirements:
		return "requirements"
	default:
		return "<unknown>"
	}
}
