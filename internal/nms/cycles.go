package nms

import "github.com/oro-core/netplan/internal/plan"

// breakSimpleCycles finds each strongly-connected component of size > 1
// remaining in g and removes one edge from it, preferring an edge whose
// source already sits in that component (spec.md §4.3's BreakSimpleCycles:
// "remove one edge per cycle, preferring within-cycle source edges").
// Reports whether any edge was removed — false means the graph has no
// more multi-node cycles left to break.
func breakSimpleCycles(g *MergeGraph) bool {
	broke := false
	for _, scc := range stronglyConnectedComponents(g) {
		if len(scc) < 2 {
			continue
		}
		inComponent := map[plan.TaskID]bool{}
		for _, id := range scc {
			inComponent[id] = true
		}

		var chosenA, chosenB plan.TaskID
		found := false
		for _, a := range scc {
			for _, b := range g.Children(a) {
				if !inComponent[b] {
					continue
				}
				chosenA, chosenB = a, b
				found = true
				break
			}
			if found {
				break
			}
		}
		if found {
			g.removeEdge(chosenA, chosenB)
			broke = true
		}
	}
	return broke
}

// stronglyConnectedComponents runs Tarjan's algorithm over g, returning
// each SCC as a slice of task IDs.
func stronglyConnectedComponents(g *MergeGraph) [][]plan.TaskID {
	index := 0
	indices := map[plan.TaskID]int{}
	lowlink := map[plan.TaskID]int{}
	onStack := map[plan.TaskID]bool{}
	var stack []plan.TaskID
	var result [][]plan.TaskID

	var strongConnect func(v plan.TaskID)
	strongConnect = func(v plan.TaskID) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.Children(v) {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] == indices[v] {
			var component []plan.TaskID
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			result = append(result, component)
		}
	}

	for _, id := range g.Nodes() {
		if _, visited := indices[id]; !visited {
			strongConnect(id)
		}
	}
	return result
}
