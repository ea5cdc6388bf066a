package nms

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/trace"
)

// doMerge absorbs target into parent: combines their requirements, hands
// target's children and edges over to parent, and removes target from
// both the plan and the MergeGraph. A requirements conflict discovered
// only now (not caught by the cheaper canMerge check) is treated as the
// failure model spec.md §4.3 describes for individual pairs: the edge is
// pruned and merging continues elsewhere, rather than aborting the pass.
func doMerge(cat *catalog.Catalog, p *plan.Plan, g *MergeGraph, parentID, targetID plan.TaskID, rec *trace.Recorder) (merged bool, err error) {
	parentTask := p.Task(parentID)
	targetTask := p.Task(targetID)
	if parentTask == nil || targetTask == nil {
		g.removeEdge(parentID, targetID)
		return false, nil
	}

	mergedReqs, mergeErr := parentTask.Requirements.Merge(targetTask.Requirements)
	if mergeErr != nil {
		g.removeEdge(parentID, targetID)
		return false, nil
	}

	txn := p.Begin()

	newParent := *parentTask
	newParent.Requirements = mergedReqs
	if newParent.OrocosName == "" {
		newParent.OrocosName = targetTask.OrocosName
	}
	txn.UpsertTask(&newParent)

	for _, child := range p.Children(targetID) {
		reparented := *child
		reparented.Parent = parentID
		reparented.HasParent = true
		txn.UpsertTask(&reparented)
	}

	txn.RewireEdges(targetID, parentID)
	txn.RemoveTask(targetID)

	if err := txn.Commit(); err != nil {
		return false, err
	}

	g.removeNode(targetID)

	if rec != nil {
		rec.Record(trace.Event{Kind: trace.MergeAccepted, Pass: "nms", Subject: targetID, Related: parentID})
	}

	// Re-check parent's remaining outgoing candidates: the merge may have
	// changed requirements enough that a previously valid replace no
	// longer holds.
	for _, childID := range g.Children(parentID) {
		child := p.Task(childID)
		refreshedParent := p.Task(parentID)
		if child == nil || refreshedParent == nil {
			continue
		}
		if !canMerge(cat, child, refreshedParent) {
			g.removeEdge(parentID, childID)
		}
	}

	return true, nil
}
