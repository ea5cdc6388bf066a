package model

import "github.com/zclconf/go-cty/cty"

// ArgumentDef declares a single named, typed argument a TaskContextModel
// accepts at instantiation time.
type ArgumentDef struct {
	Name     string
	Type     cty.Type
	Default  *cty.Value
	Optional bool
}

// TaskContextModel is a leaf component: it has typed input/output ports and
// declared arguments, and is the unit of work that ultimately gets bound to
// a deployment slot by the System Network Deployer. It has no children —
// composition is CompositionModel's job.
type TaskContextModel struct {
	Name       string
	Provenance *Provenance
	Ports      []Port
	Arguments  []ArgumentDef
	Fulfills   []FulfillsEdge
}

func (t *TaskContextModel) ModelName() string              { return t.Name }
func (t *TaskContextModel) ModelProvenance() *Provenance    { return t.Provenance }
func (t *TaskContextModel) ModelPorts() []Port              { return t.Ports }
func (t *TaskContextModel) DeclaredFulfills() []FulfillsEdge { return t.Fulfills }

var _ ComponentModel = (*TaskContextModel)(nil)
