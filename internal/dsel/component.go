package dsel

import (
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/planerr"
)

// ComponentModelFor resolves the concrete component model to instantiate
// for a named placeholder (typically a composition child), given what it
// is required to fulfill. If the DIR already pins name to a concrete
// selection, that wins outright. Otherwise each required model is looked
// up in the explicit mapping (falling back to the model itself when
// unselected) and the results are unioned via the more-specific-wins rule;
// an irreconcilable union fails with IncompatibleComponentModels. If
// nothing concrete is selected at all, an abstract proxy fulfilling the
// full union is synthesized, to be bound later by the System Network
// Deployer.
//
// The second return value records, per required model, which concrete
// model name service was selected for it — the per-required-model
// service-selection the Composition Instantiator threads through when it
// recurses into the chosen component.
func (d *DIR) ComponentModelFor(name string, requirements model.InstanceRequirements) (model.ComponentModel, map[string]string, error) {
	if sel, ok := d.explicit[model.NameKey(name)]; ok {
		switch sel.Kind() {
		case model.SelectionComponentModel:
			if d.catalog.IsRoot(sel.ModelName()) {
				cm, ok := d.catalog.ComponentLookup(sel.ModelName())
				if !ok {
					return nil, nil, planerr.New(planerr.NameResolutionError,
						"%s: selected model %q not found in catalog", name, sel.ModelName())
				}
				return cm, map[string]string{sel.ModelName(): sel.ModelName()}, nil
			}
		case model.SelectionBoundService:
			bound := sel.Bound()
			cm, ok := d.catalog.ComponentLookup(bound.ComponentModel)
			if !ok {
				return nil, nil, planerr.New(planerr.NameResolutionError,
					"%s: bound component %q not found in catalog", name, bound.ComponentModel)
			}
			return cm, map[string]string{bound.ServiceModel: bound.ComponentModel}, nil
		}
	}

	selections := make(map[string]string, len(requirements.Models))
	current := ""
	for _, required := range requirements.Models {
		candidate := required
		concrete := d.catalog.IsRoot(required)

		if sel, ok := d.explicit[model.ModelKey(required)]; ok && !sel.IsNil() {
			switch sel.Kind() {
			case model.SelectionComponentModel, model.SelectionDataServiceModel:
				candidate = sel.ModelName()
				concrete = d.catalog.IsRoot(candidate)
			case model.SelectionBoundService:
				candidate = sel.Bound().ComponentModel
				concrete = true
			}
		}
		selections[required] = candidate

		if !concrete {
			continue
		}

		switch {
		case current == "":
			current = candidate
		case current == candidate:
			// already agree
		default:
			merged, err := moreSpecific(d.catalog, current, candidate, planerr.IncompatibleComponentModels)
			if err != nil {
				return nil, nil, err
			}
			current = merged
		}
	}

	if current == "" {
		return synthesizeProxy(name, requirements.Models, d.catalog), selections, nil
	}

	cm, ok := d.catalog.ComponentLookup(current)
	if !ok {
		return nil, nil, planerr.New(planerr.NameResolutionError,
			"%s: resolved model %q not found in catalog", name, current)
	}
	return cm, selections, nil
}
