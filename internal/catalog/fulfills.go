package catalog

import "github.com/oro-core/netplan/internal/model"

// Fulfills reports whether fromName fulfills toName — reflexively and
// transitively, per the Model invariant in spec.md §3 — and returns the
// composed port mapping across however many fulfillment hops were needed.
func (c *Catalog) Fulfills(fromName, toName string) (model.PortMapping, bool) {
	if fromName == toName {
		return model.PortMapping{}, true
	}

	type frontierEntry struct {
		name    string
		mapping model.PortMapping
	}

	visited := map[string]bool{fromName: true}
	queue := []frontierEntry{{name: fromName, mapping: model.PortMapping{}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		cm, ok := c.ComponentLookup(cur.name)
		if !ok {
			continue
		}
		for _, edge := range cm.DeclaredFulfills() {
			composed := edge.Mapping.Compose(cur.mapping)
			if edge.Target == toName {
				return composed, true
			}
			if !visited[edge.Target] {
				visited[edge.Target] = true
				queue = append(queue, frontierEntry{name: edge.Target, mapping: composed})
			}
		}
	}

	return nil, false
}

// EachFulfilledModel enumerates the models that startName's component
// fulfills, for use by DIR's default-resolution pass (spec.md §4.1): the
// set of keys a default registered against startName spreads across.
// startName itself is always a member (fulfillment is reflexive). Every
// other model reached — TaskContextModel, CompositionModel, or
// DataServiceModel alike — is a root: once the walk reaches one, it is
// yielded but not explored further, so a default never spreads past the
// first interface it fulfills into that interface's own, more general
// ones.
func (c *Catalog) EachFulfilledModel(startName string) []string {
	var result []string
	visited := map[string]bool{startName: true}
	queue := []string{startName}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		cm, ok := c.ComponentLookup(cur)
		if !ok {
			continue
		}

		result = append(result, cur)
		if cur != startName {
			continue
		}

		for _, edge := range cm.DeclaredFulfills() {
			if !visited[edge.Target] {
				visited[edge.Target] = true
				queue = append(queue, edge.Target)
			}
		}
	}

	return result
}

// MatchingFulfillsEdges returns componentModel's directly-declared fulfills
// edges that provide serviceModel — either by naming it exactly or by
// naming something that itself (transitively) fulfills it. Used by DIR's
// normalize step to find "the service on v providing K": zero edges means
// componentModel doesn't provide K at all, more than one means the
// selection is ambiguous between distinct declared services.
func (c *Catalog) MatchingFulfillsEdges(componentModel, serviceModel string) []model.FulfillsEdge {
	cm, ok := c.ComponentLookup(componentModel)
	if !ok {
		return nil
	}
	var out []model.FulfillsEdge
	for _, edge := range cm.DeclaredFulfills() {
		if edge.Target == serviceModel {
			out = append(out, edge)
			continue
		}
		if _, ok := c.Fulfills(edge.Target, serviceModel); ok {
			out = append(out, edge)
		}
	}
	return out
}
