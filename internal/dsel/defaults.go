package dsel

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
)

// resolveDefaults spreads each default entry across its fulfilled-model
// set, skipping any default whose fulfilled-model set collides anywhere
// with an explicit entry — an explicit selection always wins outright, so
// a default that conflicts with one at all is dropped in its entirety,
// not merely at the colliding key. Among the defaults that survive that
// check, two distinct defaults spreading to the same model key make that
// key ambiguous: it is dropped from both, rather than reporting an error —
// callers that actually need the key will surface their own failure
// further down the pipeline (e.g. component_model_for finding nothing
// concrete to select).
func resolveDefaults(cat *catalog.Catalog, explicit map[model.Key]model.Selection, defaults []Entry) map[model.Key]model.Selection {
	type pick struct {
		selection model.Selection
		source    int
	}
	tentative := make(map[model.Key]pick)
	ambiguous := make(map[model.Key]bool)

	for i, def := range defaults {
		if !def.Key.IsModel() {
			continue
		}
		targets := cat.EachFulfilledModel(def.Key.ModelName())

		blocked := false
		for _, m := range targets {
			if _, ok := explicit[model.ModelKey(m)]; ok {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for _, m := range targets {
			mk := model.ModelKey(m)
			if ambiguous[mk] {
				continue
			}
			if existing, ok := tentative[mk]; ok {
				if existing.source != i {
					ambiguous[mk] = true
					delete(tentative, mk)
				}
				continue
			}
			tentative[mk] = pick{selection: def.Selection, source: i}
		}
	}

	out := make(map[model.Key]model.Selection, len(tentative))
	for k, p := range tentative {
		out[k] = p.selection
	}
	return out
}
