package deploy

import "github.com/oro-core/netplan/internal/model"

// disambiguate applies spec.md §4.4 step 2's two ordered passes. An
// explicit orocos_name is terminal: if set, only a slot-name match is
// accepted and a miss fails outright rather than falling through to
// hints. Without one, deployment hints narrow the pool; narrowing to
// anything other than exactly one candidate leaves the task ambiguous.
func disambiguate(reqs model.InstanceRequirements, candidates []model.GroupBinding) (model.GroupBinding, bool) {
	if reqs.OrocosName != "" {
		var matched []model.GroupBinding
		for _, c := range candidates {
			if c.SlotName == reqs.OrocosName {
				matched = append(matched, c)
			}
		}
		if len(matched) == 1 {
			return matched[0], true
		}
		return model.GroupBinding{}, false
	}

	if len(candidates) == 1 {
		return candidates[0], true
	}

	var byHint []model.GroupBinding
	for _, c := range candidates {
		for _, h := range reqs.DeploymentHints {
			if h.Matches(c.DeploymentModel, c.SlotName) {
				byHint = append(byHint, c)
				break
			}
		}
	}
	if len(byHint) == 1 {
		return byHint[0], true
	}

	return model.GroupBinding{}, false
}
