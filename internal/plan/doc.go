// Package plan implements the Data-Flow Graph (G): the living task graph
// that instantiation populates, the Network Merge Solver shrinks, and the
// System Network Deployer finalizes. A Plan owns every in-plan task and
// edge; merges transfer ownership of a task's edges to its surviving
// replacement and drop the replaced task.
//
// The network-transformation core is single-threaded and synchronous (one
// planning pass, never suspended, never cancelled mid-pass) — so, unlike
// the teacher's node.Node, Task state here is plain fields rather than
// atomics. What the teacher's concurrent executor gets from atomic state,
// this package gets from Txn: a staging area that lets a multi-step
// rewrite (a merge, a deployment binding) construct its delta, validate
// it, and apply it in one step, or abort it leaving the committed Plan
// untouched.
package plan
