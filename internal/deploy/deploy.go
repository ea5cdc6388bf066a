package deploy

import (
	"sort"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/planerr"
	"github.com/oro-core/netplan/internal/trace"
)

// Deploy runs the System Network Deployer over p: every non-deployed,
// non-finished TaskContext (concrete or a still-unresolved proxy) is
// bound to a concrete deployment slot and merged into it one at a time.
// Returns a *planerr.Error of Kind MissingDeployments, with a
// []MissingDeployment attached via Details, if any task couldn't be
// bound; the plan still reflects every binding that did succeed. rec may
// be nil; when given, every disambiguation decision and successful
// binding is recorded against it.
func Deploy(cat *catalog.Catalog, p *plan.Plan, rec *trace.Recorder) error {
	alloc := newAllocator()
	var missing []MissingDeployment

	for _, taskID := range deployableTaskIDs(p) {
		task := p.Task(taskID)
		if task == nil {
			continue
		}

		candidates := findCandidates(cat, p, taskID)
		if len(candidates) == 0 {
			missing = append(missing, MissingDeployment{TaskID: taskID})
			continue
		}

		winner, ok := disambiguate(task.Requirements, candidates)
		if !ok {
			missing = append(missing, MissingDeployment{TaskID: taskID, Candidates: candidateUsages(alloc, candidates)})
			continue
		}
		if rec != nil && len(candidates) > 1 {
			rec.Record(trace.Event{Kind: trace.Disambiguated, Pass: "deploy", Subject: taskID, Reason: winner.SlotName})
		}

		key := slotKey{DeploymentModel: winner.DeploymentModel, SlotName: winner.SlotName}
		if holder, taken := alloc.claim(key, taskID); taken {
			missing = append(missing, MissingDeployment{
				TaskID: taskID,
				Candidates: []CandidateUsage{
					{DeploymentModel: winner.DeploymentModel, SlotName: winner.SlotName, HeldBy: holder, Held: true},
				},
			})
			continue
		}

		deployment, ok := cat.Deployments[winner.DeploymentModel]
		if !ok {
			return planerr.New(planerr.InternalError, "deploy: unknown deployment model %q", winner.DeploymentModel)
		}

		deployedID, err := applyBinding(cat, p, taskID, deployment, winner)
		if err != nil {
			return err
		}
		if rec != nil {
			rec.Record(trace.Event{
				Kind:    trace.DeploymentBound,
				Pass:    "deploy",
				Subject: taskID,
				Related: deployedID,
				Reason:  winner.DeploymentModel + "/" + winner.SlotName,
			})
		}
	}

	if len(missing) > 0 {
		return planerr.New(planerr.MissingDeployments, "%d task(s) could not be deployed", len(missing)).
			WithDetails(missing)
	}
	return nil
}

// deployableTaskIDs returns every non-finished TaskContextModel (concrete
// or proxy) without a binding yet, in ascending TaskID order so repeated
// runs over the same plan allocate slots deterministically.
func deployableTaskIDs(p *plan.Plan) []plan.TaskID {
	var ids []plan.TaskID
	for _, t := range p.Tasks() {
		if t.State == plan.Finished || t.HasExecutionAgent() {
			continue
		}
		if _, ok := t.Model.(*model.TaskContextModel); !ok {
			continue
		}
		ids = append(ids, t.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func candidateUsages(alloc *allocator, candidates []model.GroupBinding) []CandidateUsage {
	out := make([]CandidateUsage, 0, len(candidates))
	for _, c := range candidates {
		key := slotKey{DeploymentModel: c.DeploymentModel, SlotName: c.SlotName}
		usage := CandidateUsage{DeploymentModel: c.DeploymentModel, SlotName: c.SlotName}
		if holder, ok := alloc.taken[key]; ok {
			usage.HeldBy = holder
			usage.Held = true
		}
		out = append(out, usage)
	}
	return out
}
