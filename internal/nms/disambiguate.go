package nms

import (
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
)

// disambiguate picks one survivor among candidates — all current
// MergeGraph parents of target — by the three ordered passes spec.md §4.3
// describes for the `ambiguous` bucket. Each pass narrows the pool and
// returns early the moment exactly one candidate remains; if all three
// passes leave more than one candidate, disambiguation fails and the pair
// is left for a later round (ok is false).
func disambiguate(p *plan.Plan, target plan.TaskID, candidates []plan.TaskID) (plan.TaskID, bool) {
	pool := dependencyDominance(p, target, candidates)
	if len(pool) == 1 {
		return pool[0], true
	}

	pool = nameMatch(p, target, pool)
	if len(pool) == 1 {
		return pool[0], true
	}

	pool = locality(p, target, pool)
	if len(pool) == 1 {
		return pool[0], true
	}

	return 0, false
}

// dependencyDominance prefers a candidate already wired to target in the
// plan's data-flow graph — a producer or consumer of target's ports is a
// more natural merge partner than a structurally unrelated candidate.
func dependencyDominance(p *plan.Plan, target plan.TaskID, candidates []plan.TaskID) []plan.TaskID {
	connected := map[plan.TaskID]bool{}
	for _, e := range p.Edges() {
		if e.From == target {
			connected[e.To] = true
		}
		if e.To == target {
			connected[e.From] = true
		}
	}

	var narrowed []plan.TaskID
	for _, c := range candidates {
		if connected[c] {
			narrowed = append(narrowed, c)
		}
	}
	if len(narrowed) > 0 {
		return narrowed
	}
	return candidates
}

// nameMatch prefers a candidate whose orocos_name or deployment hints agree
// with target's — an operator-supplied identity hint is strong evidence
// the two are meant to become the same deployed task.
func nameMatch(p *plan.Plan, target plan.TaskID, candidates []plan.TaskID) []plan.TaskID {
	targetTask := p.Task(target)
	if targetTask == nil {
		return candidates
	}

	var byName []plan.TaskID
	if targetTask.OrocosName != "" {
		for _, c := range candidates {
			ct := p.Task(c)
			if ct != nil && ct.OrocosName == targetTask.OrocosName {
				byName = append(byName, c)
			}
		}
	}
	if len(byName) > 0 {
		return byName
	}

	var byHint []plan.TaskID
	for _, c := range candidates {
		ct := p.Task(c)
		if ct == nil {
			continue
		}
		if hintsOverlap(ct.Requirements.DeploymentHints, targetTask.Requirements.DeploymentHints) {
			byHint = append(byHint, c)
		}
	}
	if len(byHint) > 0 {
		return byHint
	}

	return candidates
}

func hintsOverlap(a, b []model.DeploymentHint) bool {
	for _, ha := range a {
		for _, hb := range b {
			if ha == hb {
				return true
			}
		}
	}
	return false
}

// locality prefers the candidate nearest target in the plan's
// port-connection graph, measured by undirected edge-hop BFS distance.
func locality(p *plan.Plan, target plan.TaskID, candidates []plan.TaskID) []plan.TaskID {
	adjacency := map[plan.TaskID][]plan.TaskID{}
	for _, e := range p.Edges() {
		adjacency[e.From] = append(adjacency[e.From], e.To)
		adjacency[e.To] = append(adjacency[e.To], e.From)
	}

	distance := map[plan.TaskID]int{target: 0}
	queue := []plan.TaskID{target}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[cur] {
			if _, seen := distance[next]; seen {
				continue
			}
			distance[next] = distance[cur] + 1
			queue = append(queue, next)
		}
	}

	best := -1
	var nearest []plan.TaskID
	for _, c := range candidates {
		d, ok := distance[c]
		if !ok {
			continue
		}
		switch {
		case best == -1 || d < best:
			best = d
			nearest = []plan.TaskID{c}
		case d == best:
			nearest = append(nearest, c)
		}
	}
	if len(nearest) > 0 {
		return nearest
	}
	return candidates
}
