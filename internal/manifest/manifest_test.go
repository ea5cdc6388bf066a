package manifest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/oro-core/netplan/internal/ctxlog"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func writeManifest(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_TaskContextWithPortsArgumentsAndFulfills(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "task.hcl", `
task_context "usb_camera" {
  port "frame" {
    direction = "out"
    type      = string
  }

  argument "rate" {
    type     = number
    optional = true
  }

  fulfills "image_service" {
    mapping = {
      frame = "image"
    }
  }
}
`)

	cat, err := Load(testContext(), dir)
	require.NoError(t, err)

	tc, ok := cat.TaskContexts["usb_camera"]
	require.True(t, ok)
	require.Len(t, tc.Ports, 1)
	require.Equal(t, "frame", tc.Ports[0].Name)
	require.True(t, tc.Ports[0].Type.Equals(cty.String))

	require.Len(t, tc.Arguments, 1)
	require.Equal(t, "rate", tc.Arguments[0].Name)
	require.True(t, tc.Arguments[0].Type.Equals(cty.Number))
	require.True(t, tc.Arguments[0].Optional)

	require.Len(t, tc.Fulfills, 1)
	require.Equal(t, "image_service", tc.Fulfills[0].Target)
	require.Equal(t, "image", tc.Fulfills[0].Mapping.Map("frame"))
}

func TestLoad_DataServiceAndComposition(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "vision.hcl", `
data_service "image_service" {
  port "image" {
    direction = "out"
    type      = string
  }
}

composition "vision_pipeline" {
  child "camera" {
    required_models = ["usb_camera"]
  }

  child "detector" {
    required_models = ["edge_detector"]
    optional        = true
  }

  connection {
    from_child = "camera"
    from_port  = "frame"
    to_child   = "detector"
    to_port    = "image"

    policy {
      kind        = "stream"
      buffer_size = 10
    }
  }

  export "edges" {
    direction  = "out"
    child_name = "detector"
    child_port = "edges"
  }

  specialization {
    selections = {
      camera = "stereo_camera"
    }
    specialized = "stereo_vision_pipeline"
  }
}
`)

	cat, err := Load(testContext(), dir)
	require.NoError(t, err)

	ds, ok := cat.DataServices["image_service"]
	require.True(t, ok)
	require.Len(t, ds.Ports, 1)

	comp, ok := cat.Compositions["vision_pipeline"]
	require.True(t, ok)
	require.Len(t, comp.Children, 2)

	detector, ok := comp.ChildByName("detector")
	require.True(t, ok)
	require.True(t, detector.Options.Optional)

	require.Len(t, comp.Connections, 1)
	require.Equal(t, "stream", comp.Connections[0].Policy.Kind)
	require.Equal(t, 10, comp.Connections[0].Policy.BufferSize)

	require.Len(t, comp.Exports, 1)
	require.Equal(t, "edges", comp.Exports[0].Name)

	require.Len(t, comp.Specializations, 1)
	require.True(t, comp.Specializations[0].Matches(map[string]string{"camera": "stereo_camera"}))
}

func TestLoad_DeploymentAndDefaultDeploymentGroup(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "deploy.hcl", `
deployment "camera_deployment" {
  process_server = "vision_host"

  slot "front_camera" {
    task_model = "usb_camera"
  }

  slot "rear_camera" {
    task_model = "usb_camera"
  }
}

deployment_group "default" {
  default = true

  binding {
    task_model       = "usb_camera"
    deployment_model = "camera_deployment"
    slot_name        = "front_camera"
  }
}
`)

	cat, err := Load(testContext(), dir)
	require.NoError(t, err)

	dep, ok := cat.Deployments["camera_deployment"]
	require.True(t, ok)
	require.Equal(t, "vision_host", dep.ProcessServerName)
	slot, ok := dep.SlotFor("usb_camera")
	require.True(t, ok)
	require.Equal(t, "front_camera", slot.SlotName)

	require.Equal(t, "default", cat.DefaultDeploymentGroupName)
	group, ok := cat.DeploymentGroups["default"]
	require.True(t, ok)
	require.Len(t, group.CandidatesFor("usb_camera"), 1)
}

func TestLoad_DuplicateModelNameAcrossFilesPanics(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `
task_context "usb_camera" {}
`)
	writeManifest(t, dir, "b.hcl", `
task_context "usb_camera" {}
`)

	require.Panics(t, func() {
		_, _ = Load(testContext(), dir)
	})
}
