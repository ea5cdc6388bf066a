package model

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/oro-core/netplan/internal/planerr"
	"github.com/zclconf/go-cty/cty"
)

// DeploymentHint narrows which deployment slot a task should bind to during
// System Network Deployer disambiguation: either an exact deployment-model
// name, or a regular expression matched against candidate slot names.
type DeploymentHint struct {
	DeploymentModel string
	SlotNamePattern string
}

// Matches reports whether this hint selects the given deployment model name
// / slot name pair. An empty DeploymentModel or SlotNamePattern is treated
// as "don't care" for that dimension.
func (h DeploymentHint) Matches(deploymentModel, slotName string) bool {
	if h.DeploymentModel != "" && h.DeploymentModel != deploymentModel {
		return false
	}
	if h.SlotNamePattern != "" {
		re, err := regexp.Compile(h.SlotNamePattern)
		if err != nil || !re.MatchString(slotName) {
			return false
		}
	}
	return true
}

// InstanceRequirements accumulates everything known so far about a single
// placeholder in the network being built: the union of models it must
// fulfill, its arguments, any explicit service selections, deployment
// hints, an optional orocos_name used by SND for exact-match
// disambiguation, and an optional named deployment group consulted during
// SND's parent-walk candidate search.
type InstanceRequirements struct {
	Models            []string
	Arguments         map[string]cty.Value
	ServiceSelections map[string]string
	DeploymentHints   []DeploymentHint
	OrocosName        string
	DeploymentGroup   string
}

// NewInstanceRequirements returns an empty, ready-to-merge requirements set.
func NewInstanceRequirements() InstanceRequirements {
	return InstanceRequirements{
		Arguments:         make(map[string]cty.Value),
		ServiceSelections: make(map[string]string),
	}
}

// Merge combines two requirements sets. Models are unioned (deduplicated);
// arguments are merged by key, failing with IncompatibleSelections if both
// sides set the same key to different values; service selections are
// unioned the same way; deployment hints accumulate as a set; orocos_name
// takes the non-empty side, failing if both sides disagree.
func (r InstanceRequirements) Merge(other InstanceRequirements) (InstanceRequirements, error) {
	out := InstanceRequirements{
		Arguments:         make(map[string]cty.Value, len(r.Arguments)+len(other.Arguments)),
		ServiceSelections: make(map[string]string, len(r.ServiceSelections)+len(other.ServiceSelections)),
	}

	out.Models = unionModels(r.Models, other.Models)

	for k, v := range r.Arguments {
		out.Arguments[k] = v
	}
	for k, v := range other.Arguments {
		if existing, ok := out.Arguments[k]; ok && !existing.RawEquals(v) {
			return InstanceRequirements{}, planerr.New(planerr.IncompatibleSelections,
				"conflicting values for argument %q", k)
		}
		out.Arguments[k] = v
	}

	for k, v := range r.ServiceSelections {
		out.ServiceSelections[k] = v
	}
	for k, v := range other.ServiceSelections {
		if existing, ok := out.ServiceSelections[k]; ok && existing != v {
			return InstanceRequirements{}, planerr.New(planerr.IncompatibleSelections,
				"conflicting service selections for %q", k)
		}
		out.ServiceSelections[k] = v
	}

	out.DeploymentHints = mergeHints(r.DeploymentHints, other.DeploymentHints)

	switch {
	case r.OrocosName == "":
		out.OrocosName = other.OrocosName
	case other.OrocosName == "" || other.OrocosName == r.OrocosName:
		out.OrocosName = r.OrocosName
	default:
		return InstanceRequirements{}, planerr.New(planerr.IncompatibleSelections,
			"conflicting orocos_name: %q vs %q", r.OrocosName, other.OrocosName)
	}

	switch {
	case r.DeploymentGroup == "":
		out.DeploymentGroup = other.DeploymentGroup
	case other.DeploymentGroup == "" || other.DeploymentGroup == r.DeploymentGroup:
		out.DeploymentGroup = r.DeploymentGroup
	default:
		return InstanceRequirements{}, planerr.New(planerr.IncompatibleSelections,
			"conflicting deployment group: %q vs %q", r.DeploymentGroup, other.DeploymentGroup)
	}

	return out, nil
}

func unionModels(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, m := range a {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, m := range b {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

func mergeHints(a, b []DeploymentHint) []DeploymentHint {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]DeploymentHint, 0, len(a)+len(b))
	for _, h := range append(append([]DeploymentHint{}, a...), b...) {
		key := fmt.Sprintf("%s\x00%s", h.DeploymentModel, h.SlotNamePattern)
		if !seen[key] {
			seen[key] = true
			out = append(out, h)
		}
	}
	return out
}
