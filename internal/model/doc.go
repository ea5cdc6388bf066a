// Package model defines the format-agnostic catalog types netplan's core
// operates on: ports, the four model kinds (task context, data service,
// composition, deployment), composition children, and instance
// requirements.
//
// These types are pure data — no file parsing, no catalog lookups, no
// registry state. A concrete loader (internal/manifest) decodes an external
// representation into these structs; internal/catalog indexes them by name
// and answers "fulfills" queries over the resulting graph.
//
// # Core concepts
//
//   - Port: a typed, directional connection point owned by a component model.
//   - TaskContextModel: a leaf component with ports and arguments.
//   - DataServiceModel: an interface-only model, fulfilled by components.
//   - CompositionModel: a named group of children wired together.
//   - DeploymentModel: a named set of deployed-task slots on a process server.
//   - InstanceRequirements: the accumulated constraints for one placeholder
//     in a network being built — models, arguments, service selections, and
//     deployment hints, merged as more information becomes available.
package model
