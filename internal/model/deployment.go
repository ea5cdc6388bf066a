package model

// DeploySlot is one named, deployed-task position inside a DeploymentModel:
// a slot name paired with the TaskContextModel it will run.
type DeploySlot struct {
	SlotName  string
	TaskModel string
}

// DeploymentModel is a named physical configuration of one or more task
// slots running under a single process server. It does not implement
// ComponentModel — a deployment is a slot catalog, not something that can
// be wired into a data-flow graph.
type DeploymentModel struct {
	Name              string
	Provenance        *Provenance
	ProcessServerName string
	Slots             []DeploySlot
}

func (d *DeploymentModel) ModelName() string           { return d.Name }
func (d *DeploymentModel) ModelProvenance() *Provenance { return d.Provenance }

// SlotFor returns the slot running the given task model name, if any.
func (d *DeploymentModel) SlotFor(taskModel string) (DeploySlot, bool) {
	for _, s := range d.Slots {
		if s.TaskModel == taskModel {
			return s, true
		}
	}
	return DeploySlot{}, false
}

var _ Descriptor = (*DeploymentModel)(nil)

// GroupBinding is one task-model -> (deployment, slot) entry inside a
// DeploymentGroup — a candidate SND may pick for a task requiring that
// model.
type GroupBinding struct {
	TaskModel       string
	DeploymentModel string
	SlotName        string
}

// DeploymentGroup is a named collection of deployment bindings consulted
// during SND's parent-walk candidate search (spec.md §4.4 step 1): each
// ancestor in a task's dependency chain may name a group via its
// InstanceRequirements.DeploymentGroup, and the first ancestor with a
// non-empty candidate set for the task's model wins.
type DeploymentGroup struct {
	Name     string
	Bindings []GroupBinding
}

// CandidatesFor returns every binding in the group for the given task
// model name.
func (g *DeploymentGroup) CandidatesFor(taskModel string) []GroupBinding {
	var out []GroupBinding
	for _, b := range g.Bindings {
		if b.TaskModel == taskModel {
			out = append(out, b)
		}
	}
	return out
}
