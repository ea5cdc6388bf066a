package dsel

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/planerr"
)

// DIR is a dependency-injection mapping from selection keys to selection
// values, plus a set of staged defaults. It is built incrementally with
// Add, which mutates the receiver, and frozen into a fully-resolved form
// with Resolve. Resolve, Merge and Scope each return a new DIR and leave
// the receiver's explicit mapping unchanged.
type DIR struct {
	catalog  *catalog.Catalog
	explicit map[model.Key]model.Selection
	defaults []Entry
}

// New creates an empty DIR bound to cat, used for all of its fulfills and
// default-spread lookups.
func New(cat *catalog.Catalog) *DIR {
	return &DIR{
		catalog:  cat,
		explicit: make(map[model.Key]model.Selection),
	}
}

// Add stages new entries, normalizing each one against the catalog as
// it's added. Explicit entries overwrite any existing
// value at the same key; default entries accumulate (they are consumed
// later by Resolve, in source order, for ambiguity detection).
func (d *DIR) Add(entries ...Entry) error {
	for _, e := range entries {
		sel, err := normalize(d.catalog, e.Key, e.Selection)
		if err != nil {
			return err
		}
		if e.Default {
			d.defaults = append(d.defaults, Entry{Key: e.Key, Selection: sel, Default: true})
			continue
		}
		d.explicit[e.Key] = sel
	}
	return nil
}

// Lookup returns the explicit selection currently pinned to key, if any.
func (d *DIR) Lookup(key model.Key) (model.Selection, bool) {
	sel, ok := d.explicit[key]
	return sel, ok
}

// Resolve returns a new DIR whose explicit mapping is
// resolve_recursive(merge(explicit, resolve_defaults(...))): defaults are
// spread across their fulfilled-model sets, folded in wherever an explicit
// entry doesn't already claim the key, and the combined mapping is then
// chased to a fixed point to collapse key-valued-as-key chains.
func (d *DIR) Resolve() (*DIR, error) {
	defaulted := resolveDefaults(d.catalog, d.explicit, d.defaults)

	merged := make(map[model.Key]model.Selection, len(d.explicit)+len(defaulted))
	for k, v := range d.explicit {
		merged[k] = v
	}
	for k, v := range defaulted {
		merged[k] = v
	}

	resolved, err := resolveRecursive(merged)
	if err != nil {
		return nil, err
	}

	return &DIR{
		catalog:  d.catalog,
		explicit: resolved,
		defaults: d.defaults,
	}, nil
}

// Merge combines d with other: explicit entries are merged key by key,
// picking the more specific of the two selections' models when both sides
// set the same key to different things (failing IncompatibleSelections if
// they're unrelated); defaults are a plain set-union of both sides'
// entries.
func (d *DIR) Merge(other *DIR) (*DIR, error) {
	out := &DIR{
		catalog:  d.catalog,
		explicit: make(map[model.Key]model.Selection, len(d.explicit)+len(other.explicit)),
	}
	for k, v := range d.explicit {
		out.explicit[k] = v
	}
	for k, v := range other.explicit {
		existing, ok := out.explicit[k]
		if !ok || existing.Equal(v) {
			out.explicit[k] = v
			continue
		}
		merged, err := mergeSelections(d.catalog, existing, v)
		if err != nil {
			return nil, err
		}
		out.explicit[k] = merged
	}

	out.defaults = append(append([]Entry{}, d.defaults...), other.defaults...)
	return out, nil
}

func mergeSelections(cat *catalog.Catalog, a, b model.Selection) (model.Selection, error) {
	aKind, bKind := a.Kind(), b.Kind()
	if aKind != model.SelectionComponentModel && aKind != model.SelectionDataServiceModel {
		return model.Selection{}, planerr.New(planerr.IncompatibleSelections,
			"cannot merge incomparable selections %s and %s", a, b)
	}
	if bKind != model.SelectionComponentModel && bKind != model.SelectionDataServiceModel {
		return model.Selection{}, planerr.New(planerr.IncompatibleSelections,
			"cannot merge incomparable selections %s and %s", a, b)
	}

	winner, err := moreSpecific(cat, a.ModelName(), b.ModelName(), planerr.IncompatibleSelections)
	if err != nil {
		return model.Selection{}, err
	}
	if winner == a.ModelName() {
		return a, nil
	}
	return b, nil
}
