// Package runtimeconn describes the contract the System Network Deployer's
// output is handed to next: a separate runtime-connection pass that
// reconciles the deployed plan against whatever process servers are
// actually running. Implementing that reconciliation is explicitly out of
// scope here — this package exists so internal/deploy's output type has a
// concrete Go consumer to be handed to, not to manage connections itself.
package runtimeconn

import (
	"context"

	"github.com/oro-core/netplan/internal/plan"
)

// Consumer accepts a fully deployed plan — every task bound to a
// deployment slot, per internal/deploy.Deploy — and reconciles it against
// the live system.
//
// # Reconciliation outline
//
// A complete implementation would, for each deployed task in the plan:
//
//  1. Resolve the task's Binding.ProcessServerName to a live connection
//     (establishing one if none exists yet).
//  2. Compare the task's desired configuration (its merged
//     InstanceRequirements.Arguments) against whatever the process server
//     reports is currently running in that slot.
//  3. Push an update if the two disagree, start the task if the slot is
//     currently empty, or leave it alone if they already match.
//  4. Tear down any process-server task occupying a slot the plan no
//     longer uses.
//
// Steps 1-4 require a live transport to each process server and a model
// of its current running configuration — state this package does not
// hold. Apply is therefore one-shot and stateless from the caller's
// perspective: it is handed the full desired plan each time and decides
// what to do from scratch, rather than diffing against its own memory of
// a previous call.
type Consumer interface {
	Apply(ctx context.Context, p *plan.Plan) error
}

// NopConsumer is the reference implementation: it performs no actual
// reconciliation, only records the plan it was last given, so tests have
// something concrete to depend on.
type NopConsumer struct {
	Last *plan.Plan
}

// Apply implements Consumer by recording p and returning nil.
func (c *NopConsumer) Apply(ctx context.Context, p *plan.Plan) error {
	c.Last = p
	return nil
}

var _ Consumer = (*NopConsumer)(nil)
