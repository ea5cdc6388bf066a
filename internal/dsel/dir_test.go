package dsel

import (
	"testing"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/planerr"
	"github.com/stretchr/testify/require"
)

func newFixtureCatalog() *catalog.Catalog {
	cat := catalog.New()

	cat.RegisterDataService(&model.DataServiceModel{
		Name: "image_service",
		Ports: []model.Port{
			{Name: "image", Direction: model.Out},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "usb_camera",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "frame", Direction: model.Out},
		},
		Fulfills: []model.FulfillsEdge{
			{Target: "image_service", Mapping: model.PortMapping{"image": "frame"}},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "stereo_camera",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "frame", Direction: model.Out},
		},
		Fulfills: []model.FulfillsEdge{
			{Target: "usb_camera"},
			{Target: "image_service", Mapping: model.PortMapping{"image": "frame"}},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "lidar",
		Provenance: model.NewProvenance("fixture.hcl"),
	})

	return cat
}

func TestResolveRecursive_ChasesKeyChain(t *testing.T) {
	mapping := map[model.Key]model.Selection{
		model.NameKey("a"): model.NameSelection("b"),
		model.NameKey("b"): model.ComponentModelSelection("usb_camera"),
	}

	resolved, err := resolveRecursive(mapping)
	require.NoError(t, err)
	require.True(t, resolved[model.NameKey("a")].Equal(model.ComponentModelSelection("usb_camera")))
}

func TestResolveRecursive_SelfLoopIsNotACycle(t *testing.T) {
	mapping := map[model.Key]model.Selection{
		model.NameKey("a"): model.NameSelection("a"),
	}

	resolved, err := resolveRecursive(mapping)
	require.NoError(t, err)
	require.Equal(t, "a", resolved[model.NameKey("a")].Name())
}

func TestResolveRecursive_LongerCycleFails(t *testing.T) {
	mapping := map[model.Key]model.Selection{
		model.NameKey("a"): model.NameSelection("b"),
		model.NameKey("b"): model.NameSelection("a"),
	}

	_, err := resolveRecursive(mapping)
	require.Error(t, err)
	require.True(t, planerr.OfKind(err, planerr.RecursiveSelection))
}

func TestDIR_ExplicitBeatsDefault(t *testing.T) {
	cat := newFixtureCatalog()
	d := New(cat)

	require.NoError(t, d.Add(
		Entry{Key: model.ModelKey("usb_camera"), Selection: model.ComponentModelSelection("stereo_camera"), Default: true},
		Entry{Key: model.ModelKey("usb_camera"), Selection: model.ComponentModelSelection("usb_camera")},
	))

	resolved, err := d.Resolve()
	require.NoError(t, err)

	sel, ok := resolved.explicit[model.ModelKey("usb_camera")]
	require.True(t, ok)
	require.Equal(t, "usb_camera", sel.ModelName())
}

func TestDIR_AmbiguousDefaultsAreDropped(t *testing.T) {
	cat := newFixtureCatalog()
	d := New(cat)

	require.NoError(t, d.Add(
		Entry{Key: model.ModelKey("usb_camera"), Selection: model.ComponentModelSelection("usb_camera"), Default: true},
		Entry{Key: model.ModelKey("stereo_camera"), Selection: model.ComponentModelSelection("stereo_camera"), Default: true},
	))

	resolved, err := d.Resolve()
	require.NoError(t, err)

	// Both defaults spread to usb_camera's fulfilled-model set (stereo_camera
	// fulfills usb_camera), so usb_camera itself is ambiguous and dropped.
	_, ok := resolved.explicit[model.ModelKey("usb_camera")]
	require.False(t, ok)

	// stereo_camera is only reached by the second default.
	sel, ok := resolved.explicit[model.ModelKey("stereo_camera")]
	require.True(t, ok)
	require.Equal(t, "stereo_camera", sel.ModelName())
}

// devServiceFixtureCatalog mirrors spec.md §8's scenario-2/3 vocabulary: a
// single data service (DevService) fulfilled by two unrelated component
// models (DevImplA, DevImplB) plus an explicit-only one (OtherImpl).
func devServiceFixtureCatalog() *catalog.Catalog {
	cat := catalog.New()

	cat.RegisterDataService(&model.DataServiceModel{
		Name: "DevService",
		Ports: []model.Port{
			{Name: "data", Direction: model.Out},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "DevImplA",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "out", Direction: model.Out},
		},
		Fulfills: []model.FulfillsEdge{
			{Target: "DevService", Mapping: model.PortMapping{"data": "out"}},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "DevImplB",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "out", Direction: model.Out},
		},
		Fulfills: []model.FulfillsEdge{
			{Target: "DevService", Mapping: model.PortMapping{"data": "out"}},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "OtherImpl",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "out", Direction: model.Out},
		},
		Fulfills: []model.FulfillsEdge{
			{Target: "DevService", Mapping: model.PortMapping{"data": "out"}},
		},
	})

	return cat
}

// TestDIR_DefaultDroppedWhenItFulfillsAnExplicitDataService is spec.md §8
// scenario 2: a default fulfilling DevService must be dropped outright
// once something else has explicitly claimed DevService — not survive as
// a spurious self-mapping under its own name.
func TestDIR_DefaultDroppedWhenItFulfillsAnExplicitDataService(t *testing.T) {
	cat := devServiceFixtureCatalog()
	d := New(cat)

	require.NoError(t, d.Add(
		Entry{Key: model.ModelKey("DevImplA"), Selection: model.ComponentModelSelection("DevImplA"), Default: true},
		Entry{Key: model.ModelKey("DevService"), Selection: model.ComponentModelSelection("OtherImpl")},
	))

	resolved, err := d.Resolve()
	require.NoError(t, err)

	require.Len(t, resolved.explicit, 1)
	sel, ok := resolved.explicit[model.ModelKey("DevService")]
	require.True(t, ok)
	require.Equal(t, model.SelectionBoundService, sel.Kind())
	require.Equal(t, "OtherImpl", sel.Bound().ComponentModel)

	_, ok = resolved.explicit[model.ModelKey("DevImplA")]
	require.False(t, ok, "DevImplA default must be dropped entirely, not survive as a self-mapping")
}

// TestDIR_AmbiguousDefaultsAcrossDataService is spec.md §8 scenario 3: two
// defaults that both fulfill the same data service, with no explicit
// selection, leave that data service key unselected while each default's
// own model key is untouched.
func TestDIR_AmbiguousDefaultsAcrossDataService(t *testing.T) {
	cat := devServiceFixtureCatalog()
	d := New(cat)

	require.NoError(t, d.Add(
		Entry{Key: model.ModelKey("DevImplA"), Selection: model.ComponentModelSelection("DevImplA"), Default: true},
		Entry{Key: model.ModelKey("DevImplB"), Selection: model.ComponentModelSelection("DevImplB"), Default: true},
	))

	resolved, err := d.Resolve()
	require.NoError(t, err)

	_, ok := resolved.explicit[model.ModelKey("DevService")]
	require.False(t, ok, "DevService must remain unselected when two defaults both fulfill it")

	sel, ok := resolved.explicit[model.ModelKey("DevImplA")]
	require.True(t, ok)
	require.Equal(t, "DevImplA", sel.ModelName())

	sel, ok = resolved.explicit[model.ModelKey("DevImplB")]
	require.True(t, ok)
	require.Equal(t, "DevImplB", sel.ModelName())
}

func TestDIR_ComponentModelFor_ExplicitWins(t *testing.T) {
	cat := newFixtureCatalog()
	d := New(cat)
	require.NoError(t, d.Add(Entry{Key: model.NameKey("front_cam"), Selection: model.ComponentModelSelection("stereo_camera")}))

	cm, _, err := d.ComponentModelFor("front_cam", model.InstanceRequirements{Models: []string{"usb_camera"}})
	require.NoError(t, err)
	require.Equal(t, "stereo_camera", cm.ModelName())
}

func TestDIR_ComponentModelFor_SynthesizesProxyWhenUnselected(t *testing.T) {
	cat := newFixtureCatalog()
	d := New(cat)

	cm, _, err := d.ComponentModelFor("front_cam", model.InstanceRequirements{Models: []string{"image_service"}})
	require.NoError(t, err)
	require.True(t, IsProxy(cm))
	require.Contains(t, cm.DeclaredFulfills(), model.FulfillsEdge{Target: "image_service"})
}

func TestDIR_ComponentModelFor_UnrelatedModelsFail(t *testing.T) {
	cat := newFixtureCatalog()
	d := New(cat)
	require.NoError(t, d.Add(
		Entry{Key: model.ModelKey("usb_camera"), Selection: model.ComponentModelSelection("usb_camera")},
		Entry{Key: model.ModelKey("lidar"), Selection: model.ComponentModelSelection("lidar")},
	))

	_, _, err := d.ComponentModelFor("front_sensor", model.InstanceRequirements{Models: []string{"usb_camera", "lidar"}})
	require.Error(t, err)
	require.True(t, planerr.OfKind(err, planerr.IncompatibleComponentModels))
}

func TestDIR_Merge_PicksMoreSpecific(t *testing.T) {
	cat := newFixtureCatalog()
	a := New(cat)
	require.NoError(t, a.Add(Entry{Key: model.NameKey("front_cam"), Selection: model.ComponentModelSelection("usb_camera")}))

	b := New(cat)
	require.NoError(t, b.Add(Entry{Key: model.NameKey("front_cam"), Selection: model.ComponentModelSelection("stereo_camera")}))

	merged, err := a.Merge(b)
	require.NoError(t, err)
	require.Equal(t, "stereo_camera", merged.explicit[model.NameKey("front_cam")].ModelName())
}

func TestDIR_Merge_IncomparableFails(t *testing.T) {
	cat := newFixtureCatalog()
	a := New(cat)
	require.NoError(t, a.Add(Entry{Key: model.NameKey("front_sensor"), Selection: model.ComponentModelSelection("usb_camera")}))

	b := New(cat)
	require.NoError(t, b.Add(Entry{Key: model.NameKey("front_sensor"), Selection: model.ComponentModelSelection("lidar")}))

	_, err := a.Merge(b)
	require.Error(t, err)
	require.True(t, planerr.OfKind(err, planerr.IncompatibleSelections))
}

func TestNormalize_DataServiceKeyResolvesUniqueService(t *testing.T) {
	cat := newFixtureCatalog()
	sel, err := normalize(cat, model.ModelKey("image_service"), model.ComponentModelSelection("usb_camera"))
	require.NoError(t, err)
	require.Equal(t, model.SelectionBoundService, sel.Kind())
	require.Equal(t, "usb_camera", sel.Bound().ComponentModel)
}
