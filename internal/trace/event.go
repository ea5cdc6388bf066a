package trace

import "github.com/oro-core/netplan/internal/plan"

// Kind identifies what a trace Event records.
type Kind string

const (
	// CandidateConsidered records a merge or deployment candidate a pass
	// evaluated, whether or not it was ultimately picked.
	CandidateConsidered Kind = "candidate_considered"
	// MergeAccepted records two tasks merged into one survivor.
	MergeAccepted Kind = "merge_accepted"
	// DefaultRejected records a default argument value dropped in favor
	// of an explicit one during a merge.
	DefaultRejected Kind = "default_rejected"
	// Disambiguated records a disambiguation pass resolving an ambiguous
	// candidate set down to a single winner.
	Disambiguated Kind = "disambiguated"
	// DeploymentBound records a task bound to a concrete deployment slot.
	DeploymentBound Kind = "deployment_bound"
)

// Event is one structured diagnostic emitted by a pass. Pass names the
// stage that emitted it ("nms", "deploy"); Subject and Related name the
// tasks involved; Reason is a short human-readable explanation.
type Event struct {
	Kind    Kind
	Pass    string
	Subject plan.TaskID
	Related plan.TaskID
	Reason  string
}
