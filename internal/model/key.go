package model

// Key is the Dependency Injection resolver's selection key: either a plain
// string name, or a reference to a catalog model. Modeled as a tagged
// variant per spec.md §9 ("Dynamic selection keys mixing strings and
// models") — equality is by variant first, then by content.
type Key struct {
	isModel   bool
	name      string
	modelName string
}

// NameKey builds a string-named selection key (e.g. a composition child
// name).
func NameKey(name string) Key {
	return Key{name: name}
}

// ModelKey builds a selection key referencing a catalog model by name.
func ModelKey(modelName string) Key {
	return Key{isModel: true, modelName: modelName}
}

// IsModel reports whether this key references a catalog model rather than
// a plain name.
func (k Key) IsModel() bool { return k.isModel }

// Name returns the plain name this key holds. Only meaningful when
// !IsModel().
func (k Key) Name() string { return k.name }

// ModelName returns the catalog model name this key references. Only
// meaningful when IsModel().
func (k Key) ModelName() string { return k.modelName }

// String returns a stable textual form, used both for display and as a map
// key internally (Key itself is already comparable and hashable, so this is
// mostly for diagnostics).
func (k Key) String() string {
	if k.isModel {
		return "model:" + k.modelName
	}
	return "name:" + k.name
}

// Equal reports variant-then-content equality.
func (k Key) Equal(other Key) bool {
	return k.isModel == other.isModel && k.name == other.name && k.modelName == other.modelName
}
