package dsel

import "github.com/oro-core/netplan/internal/model"

// Scope narrows d to the selections relevant when entering a named child:
// explicit and default name-keyed entries of the form "prefix.sub_key" are
// rewritten to "sub_key"; any other name-keyed entry is dropped at the
// boundary. Model-keyed entries are never scoped — a selection keyed by a
// model reference applies wherever that model appears, not just inside
// one lexical child — per spec.md §4.2 step 3.
func (d *DIR) Scope(prefix string) *DIR {
	out := &DIR{
		catalog:  d.catalog,
		explicit: make(map[model.Key]model.Selection),
	}

	for k, v := range d.explicit {
		if rewritten, ok := rewriteKey(k, prefix); ok {
			out.explicit[rewritten] = v
		}
	}
	for _, e := range d.defaults {
		if rewritten, ok := rewriteKey(e.Key, prefix); ok {
			out.defaults = append(out.defaults, Entry{Key: rewritten, Selection: e.Selection, Default: e.Default})
		}
	}

	return out
}

func rewriteKey(k model.Key, prefix string) (model.Key, bool) {
	if k.IsModel() {
		return k, true
	}
	name := k.Name()
	if len(name) <= len(prefix)+1 || name[:len(prefix)] != prefix || name[len(prefix)] != '.' {
		return model.Key{}, false
	}
	return model.NameKey(name[len(prefix)+1:]), true
}
