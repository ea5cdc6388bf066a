package instantiate

import (
	"strings"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/planerr"
)

type autoconnectCandidate struct {
	taskID    plan.TaskID
	childName string
	portName  string
}

// autoconnect wires every composition child's unconnected input ports to a
// unique compatible output port on a sibling, per spec.md §4.2 step 5.
func autoconnect(cat *catalog.Catalog, p *plan.Plan, comp *model.CompositionModel, childIDs map[string]plan.TaskID, childModels map[string]string) error {
	for childName, childID := range childIDs {
		cm, ok := cat.ComponentLookup(childModels[childName])
		if !ok {
			continue
		}
		for _, inPort := range cm.ModelPorts() {
			if inPort.Direction != model.In {
				continue
			}
			if portAlreadyConnected(p, childID, inPort.Name) {
				continue
			}

			candidates := collectCandidates(cat, childIDs, childModels, childName, inPort)
			if len(candidates) == 0 {
				continue
			}
			candidates = breakAutoconnectTies(candidates, inPort.Name)
			if len(candidates) > 1 {
				return planerr.New(planerr.AmbiguousAutoConnection,
					"%d candidates remain for %s.%s", len(candidates), childName, inPort.Name)
			}

			winner := candidates[0]
			p.AddEdge(winner.taskID, winner.portName, childID, inPort.Name, model.PortPolicy{})
		}
	}
	return nil
}

func portAlreadyConnected(p *plan.Plan, taskID plan.TaskID, portName string) bool {
	for _, e := range p.EdgesTo(taskID) {
		if e.ToPort == portName {
			return true
		}
	}
	return false
}

func collectCandidates(cat *catalog.Catalog, childIDs map[string]plan.TaskID, childModels map[string]string, skipChild string, inPort model.Port) []autoconnectCandidate {
	var candidates []autoconnectCandidate
	for otherName, otherID := range childIDs {
		if otherName == skipChild {
			continue
		}
		om, ok := cat.ComponentLookup(childModels[otherName])
		if !ok {
			continue
		}
		for _, outPort := range om.ModelPorts() {
			if outPort.Direction != model.Out {
				continue
			}
			if !outPort.Compatible(inPort) {
				continue
			}
			candidates = append(candidates, autoconnectCandidate{taskID: otherID, childName: otherName, portName: outPort.Name})
		}
	}
	return candidates
}

// breakAutoconnectTies applies the two tie-break rules in order, narrowing
// the candidate pool and stopping as soon as one rule leaves exactly one
// candidate. A rule that narrows to a non-empty-but-not-singleton set
// still replaces the working pool before the next rule is tried; a rule
// that eliminates everyone leaves the pool untouched.
func breakAutoconnectTies(candidates []autoconnectCandidate, inPortName string) []autoconnectCandidate {
	pool := candidates

	byName := filterCandidates(pool, func(c autoconnectCandidate) bool { return c.portName == inPortName })
	if len(byName) == 1 {
		return byName
	}
	if len(byName) > 0 {
		pool = byName
	}

	bySubstring := filterCandidates(pool, func(c autoconnectCandidate) bool { return strings.Contains(inPortName, c.childName) })
	if len(bySubstring) == 1 {
		return bySubstring
	}
	if len(bySubstring) > 0 {
		pool = bySubstring
	}

	return pool
}

func filterCandidates(in []autoconnectCandidate, keep func(autoconnectCandidate) bool) []autoconnectCandidate {
	var out []autoconnectCandidate
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
