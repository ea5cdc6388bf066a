package instantiate

import "github.com/oro-core/netplan/internal/catalog"

// mappedPortName translates an abstract port name declared against one of
// requiredModels to the concrete name actualModel uses, by finding which
// required model actualModel fulfills and applying that fulfillment's port
// mapping (spec.md §4.2 step 4: "a child that fulfills a service with a
// renamed port receives mapped port names"). Falls back to the abstract
// name unchanged if no mapping applies — the common case where names
// already agree.
func mappedPortName(cat *catalog.Catalog, actualModel string, requiredModels []string, abstractPort string) string {
	for _, required := range requiredModels {
		mapping, ok := cat.Fulfills(actualModel, required)
		if !ok {
			continue
		}
		mapped := mapping.Map(abstractPort)
		if hasPort(cat, actualModel, mapped) {
			return mapped
		}
	}
	return abstractPort
}

func hasPort(cat *catalog.Catalog, modelName, portName string) bool {
	cm, ok := cat.ComponentLookup(modelName)
	if !ok {
		return false
	}
	for _, p := range cm.ModelPorts() {
		if p.Name == portName {
			return true
		}
	}
	return false
}
