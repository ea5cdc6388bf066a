package catalog

import (
	"fmt"

	"github.com/oro-core/netplan/internal/model"
)

// Catalog is the registry of task models, data-service models, composition
// models, and deployment models available to a single resolution session.
// It is read-mostly: registration happens once, during catalog assembly
// (typically from internal/manifest), and is externally serialized by the
// caller exactly as the teacher's Registry is populated once at startup.
type Catalog struct {
	TaskContexts     map[string]*model.TaskContextModel
	DataServices     map[string]*model.DataServiceModel
	Compositions     map[string]*model.CompositionModel
	Deployments      map[string]*model.DeploymentModel
	DeploymentGroups map[string]*model.DeploymentGroup

	// DefaultDeploymentGroupName names the group SND's parent-walk falls
	// back to when no ancestor's requirements name one. Empty means no
	// default is configured.
	DefaultDeploymentGroupName string
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		TaskContexts:     make(map[string]*model.TaskContextModel),
		DataServices:     make(map[string]*model.DataServiceModel),
		Compositions:     make(map[string]*model.CompositionModel),
		Deployments:      make(map[string]*model.DeploymentModel),
		DeploymentGroups: make(map[string]*model.DeploymentGroup),
	}
}

// RegisterTaskContext adds a task-context model. Panics on a duplicate
// name — a collision between two manifests is a programming/config error
// caught at load time, not a runtime condition to recover from, matching
// registry.RegisterRunner's panic-on-duplicate convention.
func (c *Catalog) RegisterTaskContext(m *model.TaskContextModel) {
	if _, exists := c.TaskContexts[m.Name]; exists {
		panic(fmt.Sprintf("catalog: task context %q already registered", m.Name))
	}
	c.TaskContexts[m.Name] = m
}

// RegisterDataService adds a data-service model.
func (c *Catalog) RegisterDataService(m *model.DataServiceModel) {
	if _, exists := c.DataServices[m.Name]; exists {
		panic(fmt.Sprintf("catalog: data service %q already registered", m.Name))
	}
	c.DataServices[m.Name] = m
}

// RegisterComposition adds a composition model.
func (c *Catalog) RegisterComposition(m *model.CompositionModel) {
	if _, exists := c.Compositions[m.Name]; exists {
		panic(fmt.Sprintf("catalog: composition %q already registered", m.Name))
	}
	c.Compositions[m.Name] = m
}

// RegisterDeployment adds a deployment model.
func (c *Catalog) RegisterDeployment(m *model.DeploymentModel) {
	if _, exists := c.Deployments[m.Name]; exists {
		panic(fmt.Sprintf("catalog: deployment %q already registered", m.Name))
	}
	c.Deployments[m.Name] = m
}

// RegisterDeploymentGroup adds a deployment group.
func (c *Catalog) RegisterDeploymentGroup(g *model.DeploymentGroup) {
	if _, exists := c.DeploymentGroups[g.Name]; exists {
		panic(fmt.Sprintf("catalog: deployment group %q already registered", g.Name))
	}
	c.DeploymentGroups[g.Name] = g
}

// DefaultDeploymentGroup returns the configured default group, if any.
func (c *Catalog) DefaultDeploymentGroup() (*model.DeploymentGroup, bool) {
	if c.DefaultDeploymentGroupName == "" {
		return nil, false
	}
	g, ok := c.DeploymentGroups[c.DefaultDeploymentGroupName]
	return g, ok
}

// Lookup finds any descriptor by name, searching every model kind.
func (c *Catalog) Lookup(name string) (model.Descriptor, bool) {
	if m, ok := c.TaskContexts[name]; ok {
		return m, true
	}
	if m, ok := c.DataServices[name]; ok {
		return m, true
	}
	if m, ok := c.Compositions[name]; ok {
		return m, true
	}
	if m, ok := c.Deployments[name]; ok {
		return m, true
	}
	return nil, false
}

// ComponentLookup finds a ComponentModel by name — a task context, data
// service, or composition, never a deployment.
func (c *Catalog) ComponentLookup(name string) (model.ComponentModel, bool) {
	if m, ok := c.TaskContexts[name]; ok {
		return m, true
	}
	if m, ok := c.DataServices[name]; ok {
		return m, true
	}
	if m, ok := c.Compositions[name]; ok {
		return m, true
	}
	return nil, false
}

// IsDataService reports whether name refers to a DataServiceModel.
func (c *Catalog) IsDataService(name string) bool {
	_, ok := c.DataServices[name]
	return ok
}

// IsRoot reports whether name refers to a TaskContextModel or
// CompositionModel.
func (c *Catalog) IsRoot(name string) bool {
	if _, ok := c.TaskContexts[name]; ok {
		return true
	}
	if _, ok := c.Compositions[name]; ok {
		return true
	}
	return false
}
