// Package catalog indexes model descriptors (internal/model) by name and
// answers the queries the rest of netplan's core needs against that index:
// "does A fulfill B, and with what port mapping", "which models does A
// fulfill", and "which deployment group is the default".
//
// Modeled directly on the teacher's internal/registry.Registry: parallel
// maps per model kind, a plain New() constructor, no package-level state.
// spec.md §9's "Global catalog / singleton state" design note is honored —
// a Catalog is always an explicit value threaded through instantiation and
// DIR, never a process-wide registry.
package catalog
