// Package trace accumulates structured diagnostic events emitted by the
// merge and deploy passes — merges accepted, disambiguation decisions,
// deployment bindings — and flushes them to a pluggable Sink. The
// CandidateConsidered and DefaultRejected kinds are defined, but no pass
// records them.
package trace
