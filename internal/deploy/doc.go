// Package deploy implements the System Network Deployer (spec.md §4.4): it
// binds each remaining abstract TaskContext in a Plan to a concrete
// deployment slot, by walking the task's ancestors for a candidate
// deployment group, disambiguating by orocos_name then deployment hints,
// allocating a slot at most once, and applying the binding one task at a
// time through a merge so per-task connectivity survives the rewrite.
package deploy
