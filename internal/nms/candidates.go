package nms

import (
	"sort"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/plan"
)

// canMerge reports the structural-compatibility check spec.md §4.3 calls
// "b.can_merge(a)": the two tasks' models agree or are related by
// fulfills, and their requirements don't conflict. Symmetric by
// construction — which side is "a" and which is "b" is decided by the
// candidate-generation rules around this check, not by canMerge itself.
func canMerge(cat *catalog.Catalog, a, b *plan.Task) bool {
	if a.Model.ModelName() != b.Model.ModelName() {
		_, aFulfillsB := cat.Fulfills(a.Model.ModelName(), b.Model.ModelName())
		_, bFulfillsA := cat.Fulfills(b.Model.ModelName(), a.Model.ModelName())
		if !aFulfillsB && !bFulfillsA {
			return false
		}
	}
	_, err := a.Requirements.Merge(b.Requirements)
	return err == nil
}

// identicalChildSets reports whether a and b (both compositions) have the
// same set of immediate child model names — spec.md §4.3's "structural
// equality of the dependency relation projected to immediate children."
func identicalChildSets(p *plan.Plan, a, b plan.TaskID) bool {
	aNames := childModelNames(p, a)
	bNames := childModelNames(p, b)
	if len(aNames) != len(bNames) {
		return false
	}
	for i := range aNames {
		if aNames[i] != bNames[i] {
			return false
		}
	}
	return true
}

func childModelNames(p *plan.Plan, id plan.TaskID) []string {
	children := p.Children(id)
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Model.ModelName())
	}
	sort.Strings(names)
	return names
}

// directMergeMappings generates the MergeGraph's candidate edges over
// taskSet: direct_merge_mappings(task_set) from spec.md §4.3.
func directMergeMappings(cat *catalog.Catalog, p *plan.Plan, taskSet []plan.TaskID) *MergeGraph {
	g := newMergeGraph()
	for _, a := range taskSet {
		g.ensureNode(a)
	}

	for _, aID := range taskSet {
		a := p.Task(aID)
		if a == nil {
			continue
		}
		for _, bID := range taskSet {
			if aID == bID {
				continue
			}
			b := p.Task(bID)
			if b == nil {
				continue
			}

			if b.IsTransactionProxy {
				continue
			}
			if b.HasExecutionAgent() && b.State != plan.Pending {
				continue
			}
			if a.State != plan.Abstract && b.State == plan.Abstract {
				continue
			}
			if a.HasExecutionAgent() && b.HasExecutionAgent() {
				continue
			}
			if a.IsComposition() && b.IsComposition() && !identicalChildSets(p, aID, bID) {
				continue
			}
			if !canMerge(cat, b, a) {
				continue
			}

			g.addEdge(aID, bID)
		}
	}

	return g
}
