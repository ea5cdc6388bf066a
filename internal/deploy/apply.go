package deploy

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/planerr"
)

// applyBinding instantiates the deployment model's concrete task for
// binding and merges abstractID into it — spec.md §4.4 step 4, applied
// one task at a time rather than batched so that abstractID's existing
// connectivity carries through the rewrite via plan.Txn.RewireEdges.
func applyBinding(cat *catalog.Catalog, p *plan.Plan, abstractID plan.TaskID, deployment *model.DeploymentModel, binding model.GroupBinding) (plan.TaskID, error) {
	abstractTask := p.Task(abstractID)
	if abstractTask == nil {
		return 0, planerr.New(planerr.InternalError, "applyBinding: task %s no longer in plan", abstractID)
	}

	concreteModel, ok := cat.TaskContexts[binding.TaskModel]
	if !ok {
		return 0, planerr.New(planerr.InternalError,
			"applyBinding: deployment group references unknown task model %q", binding.TaskModel)
	}

	deployedID := p.AddTask(concreteModel, abstractTask.Requirements)

	txn := p.Begin()

	deployedTask := *p.Task(deployedID)
	deployedTask.State = plan.Pending
	deployedTask.OrocosName = abstractTask.OrocosName
	deployedTask.Parent = abstractTask.Parent
	deployedTask.HasParent = abstractTask.HasParent
	deployedTask.Binding = &plan.Binding{
		ProcessServerName: deployment.ProcessServerName,
		DeploymentModel:   deployment.Name,
		SlotName:          binding.SlotName,
	}
	txn.UpsertTask(&deployedTask)

	for _, child := range p.Children(abstractID) {
		reparented := *child
		reparented.Parent = deployedID
		reparented.HasParent = true
		txn.UpsertTask(&reparented)
	}

	txn.RewireEdges(abstractID, deployedID)
	txn.RemoveTask(abstractID)

	if err := txn.Commit(); err != nil {
		return 0, err
	}
	return deployedID, nil
}
