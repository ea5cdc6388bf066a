package instantiate

import (
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/dsel"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
)

// Composition expands comp into a rooted task graph inside p, driven by
// dir, and returns the root task's ID. This is the entry point for both
// top-level instantiation and a composition child recursing into another
// composition (spec.md §4.2 step 3).
func Composition(cat *catalog.Catalog, p *plan.Plan, dir *dsel.DIR, comp *model.CompositionModel, requirements model.InstanceRequirements) (plan.TaskID, error) {
	// Step 1 (tentative pass): resolve every child's concrete model, purely
	// to build the selection map specialization matching needs.
	effective := make(map[string]string, len(comp.Children))
	for _, child := range comp.Children {
		cm, _, err := dir.ComponentModelFor(child.Name, childRequirements(dir, child))
		if err != nil {
			return 0, err
		}
		effective[child.Name] = cm.ModelName()
	}

	// Step 2: specialization re-targeting.
	if specialized := matchSpecialization(cat, comp, effective); specialized != nil && specialized.Name != comp.Name {
		return Composition(cat, p, dir, specialized, requirements)
	}

	root := p.AddTask(comp, requirements)
	rootTask := p.Task(root)
	rootTask.OrocosName = requirements.OrocosName

	childIDs := make(map[string]plan.TaskID, len(comp.Children))
	childModels := make(map[string]string, len(comp.Children))

	// Step 1 (committing pass) + step 3: instantiate each child, recursing
	// for composition children and rescoping the DIR at the boundary.
	for _, child := range comp.Children {
		id, ok, err := instantiateChild(cat, p, dir, child)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		childIDs[child.Name] = id
		childModels[child.Name] = p.Task(id).Model.ModelName()
		p.Task(id).Parent = root
		p.Task(id).HasParent = true
	}

	// Step 4: explicit connections.
	for _, conn := range comp.Connections {
		fromID, ok1 := childIDs[conn.FromChild]
		toID, ok2 := childIDs[conn.ToChild]
		if !ok1 || !ok2 {
			// One side was an optional child pruned to nothing; the
			// connection has no endpoint left to wire.
			continue
		}
		fromChild, _ := comp.ChildByName(conn.FromChild)
		toChild, _ := comp.ChildByName(conn.ToChild)
		fromPort := mappedPortName(cat, childModels[conn.FromChild], fromChild.RequiredModels, conn.FromPort)
		toPort := mappedPortName(cat, childModels[conn.ToChild], toChild.RequiredModels, conn.ToPort)
		p.AddEdge(fromID, fromPort, toID, toPort, conn.Policy)
	}

	// Step 5: autoconnect remaining unconnected input ports.
	if err := autoconnect(cat, p, comp, childIDs, childModels); err != nil {
		return 0, err
	}

	// Step 6: forward exported ports to the composition's own boundary.
	for _, export := range comp.Exports {
		childID, ok := childIDs[export.ChildName]
		if !ok {
			continue
		}
		if export.Direction == model.Out {
			p.AddEdge(childID, export.ChildPort, root, export.Name, model.PortPolicy{})
		} else {
			p.AddEdge(root, export.Name, childID, export.ChildPort, model.PortPolicy{})
		}
	}

	return root, nil
}

// instantiateChild resolves and instantiates one composition child,
// rescoping the DIR to the child's own key prefix. It returns ok=false
// (with no error) when an optional child's selection resolved to an
// abstract proxy — such children, and their dependency edges, are simply
// absent from the result, per spec.md §4.2's closing paragraph.
func instantiateChild(cat *catalog.Catalog, p *plan.Plan, dir *dsel.DIR, child model.CompositionChild) (plan.TaskID, bool, error) {
	requirements := childRequirements(dir, child)
	cm, _, err := dir.ComponentModelFor(child.Name, requirements)
	if err != nil {
		return 0, false, err
	}

	if child.Options.Optional && dsel.IsProxy(cm) {
		return 0, false, nil
	}

	scoped := dir.Scope(child.Name)

	if comp, ok := cm.(*model.CompositionModel); ok {
		id, err := Composition(cat, p, scoped, comp, requirements)
		return id, true, err
	}

	id := p.AddTask(cm, requirements)
	p.Task(id).OrocosName = requirements.OrocosName
	return id, true, nil
}

func childRequirements(dir *dsel.DIR, child model.CompositionChild) model.InstanceRequirements {
	reqs := model.NewInstanceRequirements()
	reqs.Models = append(reqs.Models, child.RequiredModels...)

	if sel, ok := dir.Lookup(model.NameKey(child.Name)); ok {
		if extra, isReq := sel.Requirements(); isReq {
			if merged, err := reqs.Merge(extra); err == nil {
				reqs = merged
			}
		}
	}

	return reqs
}

func matchSpecialization(cat *catalog.Catalog, comp *model.CompositionModel, effective map[string]string) *model.CompositionModel {
	for _, spec := range comp.Specializations {
		if !spec.Matches(effective) {
			continue
		}
		if specialized, ok := cat.Compositions[spec.Specialized]; ok {
			return specialized
		}
	}
	return nil
}
