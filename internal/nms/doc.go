// Package nms implements the Network Merge Solver (spec.md §4.3): it
// reduces a plan to the minimal set of tasks that represents the same
// network, by repeatedly finding pairs of semantically-equivalent tasks
// and merging the less specific one into the more specific one.
//
// The algorithm builds a MergeGraph of "a can replace b" candidate edges,
// reduces it to a fixed point each pass (resolving two-node cycles by
// rank, applying unambiguous merges, breaking remaining cycles, then
// disambiguating multi-parent targets), and repeats outward from the
// frontier merges create until a pass changes nothing.
package nms
