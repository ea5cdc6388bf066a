package dsel

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/planerr"
)

// normalize validates and rewrites one k -> v pair per the rules in the
// Dependency Injection section: a plain-name key is accepted as-is; a
// component-model key reduces a bound-service value down to its owning
// component (after checking the component fulfills the key); a
// data-service key resolves a component(-model) value to the unique
// declared service on it that provides the key.
func normalize(cat *catalog.Catalog, key model.Key, sel model.Selection) (model.Selection, error) {
	if !key.IsModel() {
		return sel, nil
	}

	if cat.IsDataService(key.ModelName()) {
		switch sel.Kind() {
		case model.SelectionComponentModel:
			return resolveUniqueService(cat, sel.ModelName(), key.ModelName())
		case model.SelectionName:
			return sel, nil
		default:
			return sel, nil
		}
	}

	// Component-model (TaskContext/Composition) key.
	if sel.Kind() == model.SelectionBoundService {
		owner := sel.Bound().ComponentModel
		if _, ok := cat.Fulfills(owner, key.ModelName()); !ok {
			return model.Selection{}, planerr.New(planerr.InvalidSelection,
				"%s does not fulfill %s", owner, key.ModelName())
		}
		return model.ComponentModelSelection(owner), nil
	}

	return sel, nil
}

func resolveUniqueService(cat *catalog.Catalog, componentModel, serviceModel string) (model.Selection, error) {
	edges := cat.MatchingFulfillsEdges(componentModel, serviceModel)
	switch len(edges) {
	case 0:
		return model.Selection{}, planerr.New(planerr.InvalidSelection,
			"%s provides no service matching %s", componentModel, serviceModel)
	case 1:
		return model.BoundServiceSelection(model.BoundService{
			ComponentModel: componentModel,
			ServiceModel:   serviceModel,
		}), nil
	default:
		return model.Selection{}, planerr.New(planerr.AmbiguousService,
			"%s provides %d services matching %s", componentModel, len(edges), serviceModel)
	}
}
