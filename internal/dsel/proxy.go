package dsel

import (
	"fmt"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
)

// synthesizeProxy builds an abstract task-context model that fulfills every
// model in requiredModels, for use when component_model_for cannot pin a
// concrete class: the proxy stands in for "some task implementing these
// models" until the System Network Deployer binds a real one. Its ports
// are the union of its required models' ports, deduplicated by name —
// enough for the Composition Instantiator to wire connections against it.
func synthesizeProxy(label string, requiredModels []string, cat *catalog.Catalog) *model.TaskContextModel {
	proxy := &model.TaskContextModel{
		Name: fmt.Sprintf("proxy(%s)", label),
	}

	seenPorts := make(map[string]bool)
	for _, m := range requiredModels {
		proxy.Fulfills = append(proxy.Fulfills, model.FulfillsEdge{Target: m})

		cm, ok := cat.ComponentLookup(m)
		if !ok {
			continue
		}
		for _, p := range cm.ModelPorts() {
			if seenPorts[p.Name] {
				continue
			}
			seenPorts[p.Name] = true
			proxy.Ports = append(proxy.Ports, p)
		}
	}

	return proxy
}

// IsProxy reports whether m was synthesized by synthesizeProxy rather than
// looked up from a catalog — abstract proxies are the ones the Composition
// Instantiator drops when they sit behind an optional dependency, and the
// only tasks the System Network Deployer matches to a slot through the
// slot model's fulfills edges rather than by exact model name.
func IsProxy(m model.ComponentModel) bool {
	return m.ModelProvenance() == nil
}
