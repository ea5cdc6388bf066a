package nms

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/trace"
)

// MergeIdenticalTasks runs the outer BFS loop spec.md §4.3 describes on
// top of a single reduction pass: seed with every task in the plan, run a
// reduction round, then narrow the next round's frontier to what the
// merges just touched — the merged survivors, their immediate
// downstream sinks, and their composition parents — since those are the
// only places a fresh merge opportunity could have opened up. Stops once a
// round merges nothing. rec may be nil; when given, every accepted merge
// and disambiguation decision is recorded against it (spec.md §6's "emit a
// debug trace listing merge candidates, accepted merges, rejected
// defaults, and disambiguation decisions").
func MergeIdenticalTasks(cat *catalog.Catalog, p *plan.Plan, rec *trace.Recorder) error {
	frontier := allTaskIDs(p)

	for len(frontier) > 0 {
		mergedAny, survivors, err := runReductionPass(cat, p, frontier, rec)
		if err != nil {
			return err
		}
		if !mergedAny {
			return nil
		}
		frontier = nextFrontier(p, survivors)
	}
	return nil
}

func allTaskIDs(p *plan.Plan) []plan.TaskID {
	tasks := p.Tasks()
	ids := make([]plan.TaskID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// nextFrontier expands survivors to the set of tasks a fresh merge
// opportunity could plausibly touch: the survivors themselves, whatever
// they feed data into downstream, and the composition task (if any) they
// were instantiated under.
func nextFrontier(p *plan.Plan, survivors []plan.TaskID) []plan.TaskID {
	seen := map[plan.TaskID]bool{}
	var out []plan.TaskID

	add := func(id plan.TaskID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range survivors {
		add(id)

		for _, e := range p.EdgesFrom(id) {
			add(e.To)
		}

		if t := p.Task(id); t != nil && t.HasParent {
			add(t.Parent)
		}
	}

	return out
}
