package plan

import (
	"sync"

	"github.com/oro-core/netplan/internal/model"
)

// Plan is the Data-Flow Graph: the complete set of in-plan tasks and the
// edges wiring their ports together. A Plan exclusively owns its tasks —
// callers never hold a Task past a Commit that might have merged it away.
//
// Plan is safe for concurrent reads while a pass isn't actively
// committing — a diagnostics consumer (internal/trace) may inspect it
// between passes — but mutation happens only through AddTask/AddEdge
// during instantiation or through a Txn during merge/deploy rewrites;
// the spec's single-threaded planning pass means there's never
// contention for the mutex, just the discipline of going through one.
type Plan struct {
	mu sync.Mutex

	tasks      map[TaskID]*Task
	edges      map[EdgeID]*Edge
	nextTaskID TaskID
	nextEdgeID EdgeID
}

// New creates an empty Plan.
func New() *Plan {
	return &Plan{
		tasks: make(map[TaskID]*Task),
		edges: make(map[EdgeID]*Edge),
	}
}

// AddTask inserts a new task and returns its assigned ID. Used during
// composition instantiation, before the task participates in any merge or
// deploy pass.
func (p *Plan) AddTask(m model.ComponentModel, requirements model.InstanceRequirements) TaskID {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextTaskID++
	id := p.nextTaskID
	p.tasks[id] = &Task{
		ID:           id,
		Model:        m,
		Requirements: requirements,
		State:        Abstract,
	}
	return id
}

// AddEdge inserts a new edge and returns its assigned ID.
func (p *Plan) AddEdge(from TaskID, fromPort string, to TaskID, toPort string, policy model.PortPolicy) EdgeID {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextEdgeID++
	id := p.nextEdgeID
	p.edges[id] = &Edge{
		ID:       id,
		From:     from,
		FromPort: fromPort,
		To:       to,
		ToPort:   toPort,
		Policy:   policy,
	}
	return id
}

// Task returns the task with the given ID, or nil if it doesn't exist
// (never existed, or was merged away).
func (p *Plan) Task(id TaskID) *Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks[id]
}

// Tasks returns every in-plan task, in no particular order.
func (p *Plan) Tasks() []*Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Task, 0, len(p.tasks))
	for _, t := range p.tasks {
		out = append(out, t)
	}
	return out
}

// Edges returns every in-plan edge, in no particular order.
func (p *Plan) Edges() []*Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Edge, 0, len(p.edges))
	for _, e := range p.edges {
		out = append(out, e)
	}
	return out
}

// EdgesFrom returns edges whose From is id.
func (p *Plan) EdgesFrom(id TaskID) []*Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Edge
	for _, e := range p.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns edges whose To is id.
func (p *Plan) EdgesTo(id TaskID) []*Edge {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Edge
	for _, e := range p.edges {
		if e.To == id {
			out = append(out, e)
		}
	}
	return out
}

// Children returns the tasks whose Parent is id — a composition's
// immediate children, used by NMS's "identical child sets" structural
// check and by the NMS and SND merges that reparent a replaced task's
// children.
func (p *Plan) Children(id TaskID) []*Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Task
	for _, t := range p.tasks {
		if t.HasParent && t.Parent == id {
			out = append(out, t)
		}
	}
	return out
}

// Ancestors walks Parent links from id up to the plan's roots, returning
// them nearest-first. Used by SND's deployment-group candidate search.
func (p *Plan) Ancestors(id TaskID) []*Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Task
	cur := id
	for {
		t, ok := p.tasks[cur]
		if !ok || !t.HasParent {
			return out
		}
		parent, ok := p.tasks[t.Parent]
		if !ok {
			return out
		}
		out = append(out, parent)
		cur = parent.ID
	}
}
