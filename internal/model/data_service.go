package model

// DataServiceModel is an interface-only model: it declares ports and a
// semantic type mapping but has no executable behavior of its own. One or
// more component models fulfill it. A data service may itself declare that
// it fulfills another, more general data service (e.g. "RangeSensor"
// fulfilling "Sensor"), building the same kind of chain TaskContextModel and
// CompositionModel participate in.
type DataServiceModel struct {
	Name       string
	Provenance *Provenance
	Ports      []Port
	Fulfills   []FulfillsEdge
}

func (d *DataServiceModel) ModelName() string              { return d.Name }
func (d *DataServiceModel) ModelProvenance() *Provenance    { return d.Provenance }
func (d *DataServiceModel) ModelPorts() []Port              { return d.Ports }
func (d *DataServiceModel) DeclaredFulfills() []FulfillsEdge { return d.Fulfills }

var _ ComponentModel = (*DataServiceModel)(nil)
