// Package planerr defines netplan's classifiable error surface: the kinds
// enumerated in spec §6 ("Error surface (kinds, not types)"), wrapped in a
// small structured Error type instead of bare strings, so a caller can
// switch on Kind the same way hcl.Diagnostic lets callers switch on
// Severity.
//
// Everywhere else in the codebase — merge rejections, disambiguation
// fallthrough, ordinary wrapping — plain fmt.Errorf("...: %w", err) is used,
// matching the teacher's style. Error only exists where the spec requires a
// caller to tell failure kinds apart.
package planerr
