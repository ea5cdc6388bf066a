package deploy

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/dsel"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
)

// findCandidates implements spec.md §4.4 step 1: walk up task's parents,
// consulting each one's requirements' named deployment group, and use the
// first non-empty candidate set. The task's own requirements are checked
// first — a task with an explicit deployment group set directly on it is
// the degenerate, zero-hop case of the same walk. Falls back to the
// catalog's default group if no ancestor (or the task itself) names one
// with a match.
func findCandidates(cat *catalog.Catalog, p *plan.Plan, taskID plan.TaskID) []model.GroupBinding {
	task := p.Task(taskID)
	if task == nil {
		return nil
	}

	sources := make([]model.InstanceRequirements, 0, 1)
	sources = append(sources, task.Requirements)
	for _, ancestor := range p.Ancestors(taskID) {
		sources = append(sources, ancestor.Requirements)
	}

	for _, reqs := range sources {
		if reqs.DeploymentGroup == "" {
			continue
		}
		group, ok := cat.DeploymentGroups[reqs.DeploymentGroup]
		if !ok {
			continue
		}
		if candidates := candidatesForTask(cat, group, task); len(candidates) > 0 {
			return candidates
		}
	}

	if group, ok := cat.DefaultDeploymentGroup(); ok {
		return candidatesForTask(cat, group, task)
	}

	return nil
}

// candidatesForTask matches a group's bindings against task by exact model
// name, or — for a synthesized proxy task standing in for a set of
// required models — by checking whether the binding's concrete task model
// fulfills one of them, since a proxy's own synthetic name never appears
// in a deployment group.
func candidatesForTask(cat *catalog.Catalog, group *model.DeploymentGroup, task *plan.Task) []model.GroupBinding {
	var out []model.GroupBinding
	for _, b := range group.Bindings {
		if b.TaskModel == task.Model.ModelName() {
			out = append(out, b)
			continue
		}
		if !dsel.IsProxy(task.Model) {
			continue
		}
		for _, edge := range task.Model.DeclaredFulfills() {
			if edge.Target == b.TaskModel {
				out = append(out, b)
				break
			}
			if _, ok := cat.Fulfills(b.TaskModel, edge.Target); ok {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
