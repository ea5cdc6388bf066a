package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureManifest = `
task_context "usb_camera" {
  port "frame" {
    direction = "out"
    type      = string
  }
}

task_context "edge_detector" {
  port "image" {
    direction = "in"
    type      = string
  }
  port "edges" {
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
  }
  export "edges" {
    direction  = "out"
    child_name = "detector"
    child_port = "edges"
  }
}

deployment "vision_deploy" {
  process_server = "vision_host"

  slot "camera_slot" {
    task_model = "usb_camera"
  }
  slot "detector_slot" {
    task_model = "edge_detector"
  }
}

deployment_group "default" {
  default = true

  binding {
    task_model       = "usb_camera"
    deployment_model = "vision_deploy"
    slot_name        = "camera_slot"
  }
  binding {
    task_model       = "edge_detector"
    deployment_model = "vision_deploy"
    slot_name        = "detector_slot"
  }
}
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fixtureManifest), 0o644))
	return dir
}

func TestRun_FullPipelineDeploysEveryTask(t *testing.T) {
	dir := writeFixture(t)
	out := &bytes.Buffer{}

	err := run(out, []string{"-composition", "vision_pipeline", dir})
	require.NoError(t, err)
	// The composition root task counts as a plan task but is never deployed;
	// both task-context children are.
	require.Contains(t, out.String(), "3 task(s), 2 deployed")
}

func TestRun_UnknownCompositionFails(t *testing.T) {
	dir := writeFixture(t)
	out := &bytes.Buffer{}

	err := run(out, []string{"-composition", "does_not_exist", dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown composition")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined")
}
