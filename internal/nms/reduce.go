package nms

import (
	"sort"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/trace"
)

type partition struct {
	oneParent []plan.TaskID
	ambiguous []plan.TaskID
	cycles    []plan.TaskID
}

// prepare resolves two-node cycles by merge rank (the lesser direction is
// removed; a genuine tie leaves both edges, to be picked up by the cycles
// bucket) and partitions the remaining targets into one_parent, ambiguous,
// and cycles per spec.md §4.3 step 1.
func prepare(p *plan.Plan, g *MergeGraph) partition {
	seen := map[[2]plan.TaskID]bool{}
	for _, a := range g.Nodes() {
		for _, b := range g.Children(a) {
			if !g.out[b][a] {
				continue
			}
			key := orderedPair(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true

			ta, tb := p.Task(a), p.Task(b)
			if ta == nil || tb == nil {
				continue
			}
			switch rank(ta, tb) {
			case leftWins:
				g.removeEdge(b, a)
			case rightWins:
				g.removeEdge(a, b)
			}
		}
	}

	var result partition
	for _, target := range g.Nodes() {
		parents := g.Parents(target)
		if len(parents) == 0 {
			continue
		}
		if g.reachableFromItself(target) {
			result.cycles = append(result.cycles, target)
			continue
		}
		if len(parents) == 1 {
			result.oneParent = append(result.oneParent, target)
			continue
		}
		result.ambiguous = append(result.ambiguous, target)
	}
	return result
}

func orderedPair(a, b plan.TaskID) [2]plan.TaskID {
	if a < b {
		return [2]plan.TaskID{a, b}
	}
	return [2]plan.TaskID{b, a}
}

// runReductionPass reduces a single MergeGraph built over taskSet to a
// fixpoint: Prepare, then repeatedly ApplySimpleMerges (one_parent
// targets), then BreakSimpleCycles when no simple merge can progress, then
// Disambiguate's three passes over the ambiguous bucket, looping back to
// Prepare after any progress. Stops once a round makes no progress at all.
// Returns whether anything merged, and the survivor IDs that absorbed a
// target — the outer loop's frontier seeds for its next round.
func runReductionPass(cat *catalog.Catalog, p *plan.Plan, taskSet []plan.TaskID, rec *trace.Recorder) (mergedAny bool, survivors []plan.TaskID, err error) {
	g := directMergeMappings(cat, p, taskSet)
	survivorSet := map[plan.TaskID]bool{}

	for {
		part := prepare(p, g)

		progressed := false
		for _, target := range part.oneParent {
			parents := g.Parents(target)
			if len(parents) != 1 {
				continue
			}
			merged, mergeErr := doMerge(cat, p, g, parents[0], target, rec)
			if mergeErr != nil {
				return mergedAny, nil, mergeErr
			}
			if merged {
				mergedAny = true
				progressed = true
				survivorSet[parents[0]] = true
			}
		}
		if progressed {
			continue
		}

		if len(part.cycles) > 0 && breakSimpleCycles(g) {
			continue
		}

		resolved := false
		for _, target := range part.ambiguous {
			parents := g.Parents(target)
			if len(parents) < 2 {
				continue
			}
			winner, ok := disambiguate(p, target, parents)
			if !ok {
				continue
			}
			if rec != nil {
				rec.Record(trace.Event{Kind: trace.Disambiguated, Pass: "nms", Subject: target, Related: winner})
			}
			merged, mergeErr := doMerge(cat, p, g, winner, target, rec)
			if mergeErr != nil {
				return mergedAny, nil, mergeErr
			}
			if merged {
				mergedAny = true
				resolved = true
				survivorSet[winner] = true
			}
		}
		if resolved {
			continue
		}

		break
	}

	for id := range survivorSet {
		survivors = append(survivors, id)
	}
	sort.Slice(survivors, func(i, j int) bool { return survivors[i] < survivors[j] })
	return mergedAny, survivors, nil
}
