package plan

// LifecycleState is a task's position in the abstract -> pending -> running
// -> finished progression spec.md §3 defines for the Plan/DataFlowGraph.
type LifecycleState int

const (
	// Abstract tasks are not yet bound to a deployment. Plan.AddTask
	// creates every task in this state — dsel proxies, concrete task
	// contexts and compositions alike.
	Abstract LifecycleState = iota
	// Pending tasks have been bound to a deployment slot by internal/deploy
	// but have not started running.
	Pending
	// Running tasks are currently executing (out of this core's scope to
	// drive, but tracked so NMS/SND candidate rules can see it).
	Running
	// Finished tasks have completed; they are never merge or deploy
	// targets again.
	Finished
)

// String returns the lowercase state name used in diagnostics.
func (s LifecycleState) String() string {
	switch s {
	case Abstract:
		return "abstract"
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
