package nms

import (
	"sort"

	"github.com/oro-core/netplan/internal/plan"
)

// MergeGraph is the directed "a can replace b" candidate graph spec.md
// §4.3 builds fresh each reduction pass. It is never persisted across
// passes — directMergeMappings rebuilds it from the current task set.
type MergeGraph struct {
	out map[plan.TaskID]map[plan.TaskID]bool
	in  map[plan.TaskID]map[plan.TaskID]bool
}

func newMergeGraph() *MergeGraph {
	return &MergeGraph{
		out: make(map[plan.TaskID]map[plan.TaskID]bool),
		in:  make(map[plan.TaskID]map[plan.TaskID]bool),
	}
}

func (g *MergeGraph) ensureNode(id plan.TaskID) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[plan.TaskID]bool)
	}
	if _, ok := g.in[id]; !ok {
		g.in[id] = make(map[plan.TaskID]bool)
	}
}

func (g *MergeGraph) addEdge(a, b plan.TaskID) {
	g.ensureNode(a)
	g.ensureNode(b)
	g.out[a][b] = true
	g.in[b][a] = true
}

func (g *MergeGraph) removeEdge(a, b plan.TaskID) {
	delete(g.out[a], b)
	delete(g.in[b], a)
}

// Parents returns the IDs with an edge pointing at target, in ascending
// TaskID order so repeated runs over the same graph behave identically
// (spec.md §5's deterministic tie-breaking).
func (g *MergeGraph) Parents(target plan.TaskID) []plan.TaskID {
	out := make([]plan.TaskID, 0, len(g.in[target]))
	for id := range g.in[target] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Children returns the IDs target has an edge to, in ascending TaskID
// order so repeated runs over the same graph behave identically (spec.md
// §5's deterministic tie-breaking).
func (g *MergeGraph) Children(source plan.TaskID) []plan.TaskID {
	out := make([]plan.TaskID, 0, len(g.out[source]))
	for id := range g.out[source] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Nodes returns every node currently in the graph, in ascending TaskID
// order so repeated runs over the same graph behave identically (spec.md
// §5's deterministic tie-breaking).
func (g *MergeGraph) Nodes() []plan.TaskID {
	out := make([]plan.TaskID, 0, len(g.out))
	for id := range g.out {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// removeNode drops id and every edge touching it — used once a task has
// been merged away and no longer exists in the plan.
func (g *MergeGraph) removeNode(id plan.TaskID) {
	for other := range g.out[id] {
		delete(g.in[other], id)
	}
	for other := range g.in[id] {
		delete(g.out[other], id)
	}
	delete(g.out, id)
	delete(g.in, id)
}

// reachableFromItself reports whether start can reach itself by following
// outgoing edges — a cycle through start, used by Prepare to partition
// targets into the `cycles` bucket.
func (g *MergeGraph) reachableFromItself(start plan.TaskID) bool {
	visited := map[plan.TaskID]bool{}
	var stack []plan.TaskID
	for next := range g.out[start] {
		stack = append(stack, next)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == start {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for next := range g.out[cur] {
			stack = append(stack, next)
		}
	}
	return false
}
