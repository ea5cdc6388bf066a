package deploy

import "github.com/oro-core/netplan/internal/plan"

// CandidateUsage is one slot a missing task considered — and, if the slot
// was already spoken for, which task holds it.
type CandidateUsage struct {
	DeploymentModel string
	SlotName        string
	HeldBy          plan.TaskID
	Held            bool
}

// MissingDeployment records a task SND could not bind, together with
// every candidate slot it considered — spec.md §4.4 step 5's "per-task
// candidate list for diagnostics."
type MissingDeployment struct {
	TaskID     plan.TaskID
	Candidates []CandidateUsage
}
