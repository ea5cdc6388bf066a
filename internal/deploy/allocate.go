package deploy

import "github.com/oro-core/netplan/internal/plan"

type slotKey struct {
	DeploymentModel string
	SlotName        string
}

// allocator tracks which deployment slots this Deploy run has already
// handed out — spec.md §4.4 step 3: "a deployment slot may be used by at
// most one task."
type allocator struct {
	taken map[slotKey]plan.TaskID
}

func newAllocator() *allocator {
	return &allocator{taken: make(map[slotKey]plan.TaskID)}
}

// claim reserves key for taskID. Returns the task already holding it, if
// any — the caller uses that to build the missing_deployments diagnostic.
func (a *allocator) claim(key slotKey, taskID plan.TaskID) (holder plan.TaskID, alreadyTaken bool) {
	if existing, ok := a.taken[key]; ok {
		return existing, true
	}
	a.taken[key] = taskID
	return 0, false
}
