package plan

import "github.com/oro-core/netplan/internal/planerr"

// Txn stages a batch of task/edge mutations against a Plan without
// applying any of them until Commit. NMS's do_merge and SND's per-task
// deployment application both build a Txn, stage their rewrite, and
// commit — so a merge that would leave an edge with a dangling endpoint
// is caught before anything observable changes (Commit checks edge
// endpoints only), matching spec.md §5's "construct deltas,
// commit only when the pass completes."
type Txn struct {
	plan *Plan

	upsertTasks map[TaskID]*Task
	removeTasks map[TaskID]bool
	upsertEdges map[EdgeID]*Edge
	removeEdges map[EdgeID]bool
}

// Begin opens a new transaction against p.
func (p *Plan) Begin() *Txn {
	return &Txn{
		plan:        p,
		upsertTasks: make(map[TaskID]*Task),
		removeTasks: make(map[TaskID]bool),
		upsertEdges: make(map[EdgeID]*Edge),
		removeEdges: make(map[EdgeID]bool),
	}
}

// UpsertTask stages t for insertion or update.
func (t *Txn) UpsertTask(task *Task) {
	t.upsertTasks[task.ID] = task
	delete(t.removeTasks, task.ID)
}

// RemoveTask stages id for removal.
func (t *Txn) RemoveTask(id TaskID) {
	t.removeTasks[id] = true
	delete(t.upsertTasks, id)
}

// NewEdgeID allocates an edge ID for a staged edge without committing
// anything — merges need the ID to build the Edge value itself before
// staging it.
func (t *Txn) NewEdgeID() EdgeID {
	t.plan.mu.Lock()
	defer t.plan.mu.Unlock()
	t.plan.nextEdgeID++
	return t.plan.nextEdgeID
}

// UpsertEdge stages e for insertion or update.
func (t *Txn) UpsertEdge(e *Edge) {
	t.upsertEdges[e.ID] = e
	delete(t.removeEdges, e.ID)
}

// RemoveEdge stages id for removal.
func (t *Txn) RemoveEdge(id EdgeID) {
	t.removeEdges[id] = true
	delete(t.upsertEdges, id)
}

// RewireEdges redirects every staged-or-committed edge currently pointing
// at from (as either endpoint) to point at to instead — the "rewire all
// in/out edges of target to parent" step of do_merge.
func (t *Txn) RewireEdges(from, to TaskID) {
	for _, e := range t.plan.Edges() {
		if e.From != from && e.To != from {
			continue
		}
		rewired := *e
		if rewired.From == from {
			rewired.From = to
		}
		if rewired.To == from {
			rewired.To = to
		}
		t.UpsertEdge(&rewired)
	}
	for _, e := range t.upsertEdges {
		if e.From == from {
			e.From = to
		}
		if e.To == from {
			e.To = to
		}
	}
}

// Commit validates the staged changes — no surviving edge may reference a
// removed task — and applies them to the Plan atomically. On validation
// failure, the Plan is left exactly as it was before Begin.
func (t *Txn) Commit() error {
	t.plan.mu.Lock()
	defer t.plan.mu.Unlock()

	finalTasks := make(map[TaskID]bool, len(t.plan.tasks))
	for id := range t.plan.tasks {
		finalTasks[id] = true
	}
	for id := range t.removeTasks {
		delete(finalTasks, id)
	}
	for id := range t.upsertTasks {
		finalTasks[id] = true
	}

	finalEdges := make(map[EdgeID]*Edge, len(t.plan.edges))
	for id, e := range t.plan.edges {
		finalEdges[id] = e
	}
	for id := range t.removeEdges {
		delete(finalEdges, id)
	}
	for id, e := range t.upsertEdges {
		finalEdges[id] = e
	}

	for _, e := range finalEdges {
		if !finalTasks[e.From] || !finalTasks[e.To] {
			return planerr.New(planerr.InternalError,
				"txn commit: edge %s references a task not in the resulting plan", e.ID)
		}
	}

	for id := range t.removeTasks {
		delete(t.plan.tasks, id)
	}
	for id, task := range t.upsertTasks {
		t.plan.tasks[id] = task
	}
	for id := range t.removeEdges {
		delete(t.plan.edges, id)
	}
	for id, e := range t.upsertEdges {
		t.plan.edges[id] = e
	}

	return nil
}

// Abort discards every staged change; it exists for readability at call
// sites that build a Txn speculatively and decide not to commit it.
func (t *Txn) Abort() {
	t.upsertTasks = nil
	t.removeTasks = nil
	t.upsertEdges = nil
	t.removeEdges = nil
}
