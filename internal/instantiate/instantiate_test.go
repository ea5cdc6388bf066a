package instantiate

import (
	"testing"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/dsel"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func fixtureCatalog() *catalog.Catalog {
	cat := catalog.New()

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "usb_camera",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "frame", Direction: model.Out, Type: cty.String},
		},
	})

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "edge_detector",
		Provenance: model.NewProvenance("fixture.hcl"),
		Ports: []model.Port{
			{Name: "image", Direction: model.In, Type: cty.String},
			{Name: "edges", Direction: model.Out, Type: cty.String},
		},
	})

	cat.RegisterComposition(&model.CompositionModel{
		Name:       "vision_pipeline",
		Provenance: model.NewProvenance("fixture.hcl"),
		Children: []model.CompositionChild{
			{Name: "camera", RequiredModels: []string{"usb_camera"}},
			{Name: "detector", RequiredModels: []string{"edge_detector"}},
		},
		Exports: []model.ExportedPort{
			{Name: "edges", Direction: model.Out, ChildName: "detector", ChildPort: "edges"},
		},
	})

	return cat
}

func TestComposition_AutoconnectsAndExports(t *testing.T) {
	cat := fixtureCatalog()
	comp := cat.Compositions["vision_pipeline"]
	dir := dsel.New(cat)
	p := plan.New()

	root, err := Composition(cat, p, dir, comp, model.NewInstanceRequirements())
	require.NoError(t, err)
	require.NotZero(t, root)

	edges := p.Edges()
	require.Len(t, edges, 2)

	var sawAutoconnect, sawExport bool
	for _, e := range edges {
		if e.FromPort == "frame" && e.ToPort == "image" {
			sawAutoconnect = true
		}
		if e.ToPort == "edges" && e.To == root {
			sawExport = true
		}
	}
	require.True(t, sawAutoconnect, "camera.frame should autoconnect to detector.image")
	require.True(t, sawExport, "detector.edges should forward to the composition boundary")
}

func TestComposition_OptionalProxyChildIsDropped(t *testing.T) {
	cat := fixtureCatalog()
	comp := cat.Compositions["vision_pipeline"]
	comp.Children = append(comp.Children, model.CompositionChild{
		Name:           "logger",
		RequiredModels: []string{"edge_detector"},
		Options:        model.DependencyOptions{Optional: true},
	})
	dir := dsel.New(cat)
	p := plan.New()

	// logger requires edge_detector but nothing pins it to a concrete
	// model beyond the already-instantiated detector, so ComponentModelFor
	// resolves it to the same concrete class, not a proxy — pin it away
	// from any selection instead so it stays abstract.
	comp.Children[2].RequiredModels = []string{"unbound_logging_service"}

	root, err := Composition(cat, p, dir, comp, model.NewInstanceRequirements())
	require.NoError(t, err)

	for _, task := range p.Tasks() {
		require.NotEqual(t, "proxy(logger)", task.Model.ModelName())
	}
	_ = root
}
