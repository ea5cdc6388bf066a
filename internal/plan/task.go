package plan

import "github.com/oro-core/netplan/internal/model"

// Binding records a deployed task's physical slot: which process server,
// which deployment model, which named slot within it. Set by
// internal/deploy once SND allocates a slot; nil until then.
type Binding struct {
	ProcessServerName string
	DeploymentModel   string
	SlotName          string
}

// Task is one vertex of the Plan: a component-model instance (possibly
// still an abstract proxy), its accumulated requirements, its lifecycle
// state, and — once SND has run — its deployment binding.
type Task struct {
	ID           TaskID
	Model        model.ComponentModel
	Requirements model.InstanceRequirements
	OrocosName   string
	State        LifecycleState
	Binding      *Binding

	// Parent is the composition task this task was instantiated as a
	// child of, or zero-value for a root task. Used by SND's
	// parent-walk candidate search and NMS's "composition parents of
	// merged tasks" frontier expansion.
	Parent    TaskID
	HasParent bool

	// IsTransactionProxy marks a task that already existed in the plan
	// before the current merge pass began: a stable stand-in that other
	// tasks may be merged into, but that never itself gets replaced.
	// Neither instantiation nor NMS sets it; the caller marks such tasks
	// before running the merge pass.
	IsTransactionProxy bool
}

// HasExecutionAgent reports whether the task is already bound to a
// deployment — the "two real deployments cannot be merged" and "cannot
// displace a running deployed task" NMS candidate-generation checks both
// key off this.
func (t *Task) HasExecutionAgent() bool {
	return t.Binding != nil
}

// IsDataServiceProxy reports whether this task's model is a bare
// DataServiceModel rather than a TaskContext/Composition — the merge
// ordering's "is not a data-service proxy" criterion.
func (t *Task) IsDataServiceProxy() bool {
	_, ok := t.Model.(*model.DataServiceModel)
	return ok
}

// IsComposition reports whether the task's model is a CompositionModel —
// NMS candidate generation requires identical child sets before two
// compositions may merge.
func (t *Task) IsComposition() bool {
	_, ok := t.Model.(*model.CompositionModel)
	return ok
}

// IsFullyInstantiated reports whether every argument the task's model
// declares (when it's a TaskContextModel) has a concrete value recorded in
// Requirements.Arguments — the merge ordering's "is fully instantiated"
// criterion.
func (t *Task) IsFullyInstantiated() bool {
	tc, ok := t.Model.(*model.TaskContextModel)
	if !ok {
		return true
	}
	for _, arg := range tc.Arguments {
		if arg.Optional {
			continue
		}
		if _, ok := t.Requirements.Arguments[arg.Name]; !ok {
			return false
		}
	}
	return true
}
