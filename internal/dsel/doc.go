// Package dsel implements the Dependency Injection resolver (DIR): the
// mapping from selection keys (a plain name, or a reference to a catalog
// model) to selection values (a name still to be looked up, a concrete
// component or data-service model, a component bound through one of its
// services, a full requirements set, or nothing) that the Composition
// Instantiator consults while building a task graph out of a composition.
//
// Add stages new explicit or default entries into the receiver; Resolve
// then produces a new DIR with those entries folded in,
// mirroring the teacher's internal/dag build-then-freeze discipline rather
// than mutating resolution state in place.
package dsel
