// Package manifest loads catalog model descriptors — task contexts, data
// services, compositions, deployments, deployment groups — from HCL
// manifest files into an internal/catalog.Catalog.
package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// PortSchema is a single `port` block inside a task_context, data_service,
// or composition manifest.
type PortSchema struct {
	Name      string         `hcl:"name,label"`
	Direction string         `hcl:"direction"`
	Type      hcl.Expression `hcl:"type"`
}

// ArgumentSchema is a single `argument` block inside a task_context.
type ArgumentSchema struct {
	Name     string         `hcl:"name,label"`
	Type     hcl.Expression `hcl:"type"`
	Optional bool           `hcl:"optional,optional"`
	Default  *cty.Value     `hcl:"default,optional"`
}

// FulfillsSchema is a `fulfills` block: a declaration that the enclosing
// model satisfies another named model, optionally renaming ports along
// the way.
type FulfillsSchema struct {
	Target  string            `hcl:"target,label"`
	Mapping map[string]string `hcl:"mapping,optional"`
}

// TaskContextSchema is a top-level `task_context` block.
type TaskContextSchema struct {
	Name      string            `hcl:"name,label"`
	Ports     []*PortSchema     `hcl:"port,block"`
	Arguments []*ArgumentSchema `hcl:"argument,block"`
	Fulfills  []*FulfillsSchema `hcl:"fulfills,block"`
}

// DataServiceSchema is a top-level `data_service` block.
type DataServiceSchema struct {
	Name     string            `hcl:"name,label"`
	Ports    []*PortSchema     `hcl:"port,block"`
	Fulfills []*FulfillsSchema `hcl:"fulfills,block"`
}

// ChildSchema is a `child` block inside a composition.
type ChildSchema struct {
	Name           string   `hcl:"name,label"`
	RequiredModels []string `hcl:"required_models"`
	Optional       bool     `hcl:"optional,optional"`
}

// PolicySchema is the `policy` block inside a connection.
type PolicySchema struct {
	Kind       string `hcl:"kind,optional"`
	BufferSize int    `hcl:"buffer_size,optional"`
}

// ConnectionSchema is a `connection` block inside a composition.
type ConnectionSchema struct {
	FromChild string        `hcl:"from_child"`
	FromPort  string        `hcl:"from_port"`
	ToChild   string        `hcl:"to_child"`
	ToPort    string        `hcl:"to_port"`
	Policy    *PolicySchema `hcl:"policy,block"`
}

// ExportSchema is an `export` block inside a composition.
type ExportSchema struct {
	Name      string `hcl:"name,label"`
	Direction string `hcl:"direction"`
	ChildName string `hcl:"child_name"`
	ChildPort string `hcl:"child_port"`
}

// SpecializationSchema is a `specialization` block inside a composition.
type SpecializationSchema struct {
	Selections  map[string]string `hcl:"selections"`
	Specialized string            `hcl:"specialized"`
}

// CompositionSchema is a top-level `composition` block.
type CompositionSchema struct {
	Name            string                  `hcl:"name,label"`
	Children        []*ChildSchema          `hcl:"child,block"`
	Connections     []*ConnectionSchema     `hcl:"connection,block"`
	Exports         []*ExportSchema         `hcl:"export,block"`
	Specializations []*SpecializationSchema `hcl:"specialization,block"`
	Fulfills        []*FulfillsSchema       `hcl:"fulfills,block"`
}

// SlotSchema is a `slot` block inside a deployment.
type SlotSchema struct {
	Name      string `hcl:"name,label"`
	TaskModel string `hcl:"task_model"`
}

// DeploymentSchema is a top-level `deployment` block.
type DeploymentSchema struct {
	Name              string        `hcl:"name,label"`
	ProcessServerName string        `hcl:"process_server"`
	Slots             []*SlotSchema `hcl:"slot,block"`
}

// BindingSchema is a `binding` block inside a deployment_group.
type BindingSchema struct {
	TaskModel       string `hcl:"task_model"`
	DeploymentModel string `hcl:"deployment_model"`
	SlotName        string `hcl:"slot_name"`
}

// DeploymentGroupSchema is a top-level `deployment_group` block.
type DeploymentGroupSchema struct {
	Name     string           `hcl:"name,label"`
	Default  bool             `hcl:"default,optional"`
	Bindings []*BindingSchema `hcl:"binding,block"`
}

// fileRoot decodes every top-level block kind a manifest file may contain.
type fileRoot struct {
	TaskContexts     []*TaskContextSchema     `hcl:"task_context,block"`
	DataServices     []*DataServiceSchema     `hcl:"data_service,block"`
	Compositions     []*CompositionSchema     `hcl:"composition,block"`
	Deployments      []*DeploymentSchema      `hcl:"deployment,block"`
	DeploymentGroups []*DeploymentGroupSchema `hcl:"deployment_group,block"`
	Remain           hcl.Body                 `hcl:",remain"`
}
