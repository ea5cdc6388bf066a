// Package instantiate implements the Composition Instantiator (spec.md
// §4.2): given a composition model and a Dependency Injection mapping, it
// expands the composition into a rooted task graph in a plan.Plan —
// resolving each child's concrete model, re-targeting to a more specific
// composition when a specialization matches, recursing into composition
// children with a rescoped DIR, wiring explicit connections and autoconnect
// edges, and forwarding exported ports to the composition's own boundary.
package instantiate
