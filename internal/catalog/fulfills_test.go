package catalog

import (
	"sort"
	"testing"

	"github.com/oro-core/netplan/internal/model"
	"github.com/stretchr/testify/require"
)

func fulfillsFixtureCatalog() *Catalog {
	cat := New()

	cat.RegisterDataService(&model.DataServiceModel{
		Name: "image_service",
		Ports: []model.Port{
			{Name: "image", Direction: model.Out},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "usb_camera",
		Provenance: model.NewProvenance("fixture.hcl"),
		Fulfills: []model.FulfillsEdge{
			{Target: "image_service", Mapping: model.PortMapping{"image": "frame"}},
		},
	})

	return cat
}

func TestEachFulfilledModel_IncludesSelfAndFulfilledDataService(t *testing.T) {
	cat := fulfillsFixtureCatalog()

	got := cat.EachFulfilledModel("usb_camera")
	sort.Strings(got)

	require.Equal(t, []string{"image_service", "usb_camera"}, got)
}

func TestEachFulfilledModel_UnknownModelYieldsNothing(t *testing.T) {
	cat := fulfillsFixtureCatalog()

	require.Empty(t, cat.EachFulfilledModel("does_not_exist"))
}
