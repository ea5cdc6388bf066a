package nms

import "github.com/oro-core/netplan/internal/plan"

// compareResult is the result of one merge-ordering criterion: -1 means
// the left task ranks higher (wins), +1 means the right does, 0 means the
// criterion can't distinguish them (spec.md's "nil").
type compareResult int

const (
	incomparable compareResult = 0
	leftWins     compareResult = -1
	rightWins    compareResult = 1
)

func boolCriterion(left, right bool) compareResult {
	switch {
	case left == right:
		return incomparable
	case left:
		return leftWins
	default:
		return rightWins
	}
}

// rank applies spec.md §4.3's merge-ordering truth table to a, b, in
// criterion order, returning the first non-nil result. 0 means the two
// tasks are genuinely incomparable under this order.
func rank(a, b *plan.Task) compareResult {
	criteria := []func(a, b *plan.Task) compareResult{
		func(a, b *plan.Task) compareResult { return boolCriterion(a.State != plan.Finished, b.State != plan.Finished) },
		func(a, b *plan.Task) compareResult { return boolCriterion(a.State == plan.Running, b.State == plan.Running) },
		func(a, b *plan.Task) compareResult { return boolCriterion(a.HasExecutionAgent(), b.HasExecutionAgent()) },
		func(a, b *plan.Task) compareResult { return boolCriterion(!a.IsDataServiceProxy(), !b.IsDataServiceProxy()) },
		func(a, b *plan.Task) compareResult { return boolCriterion(a.IsFullyInstantiated(), b.IsFullyInstantiated()) },
		func(a, b *plan.Task) compareResult { return boolCriterion(a.IsTransactionProxy, b.IsTransactionProxy) },
	}
	for _, c := range criteria {
		if r := c(a, b); r != incomparable {
			return r
		}
	}
	return incomparable
}
