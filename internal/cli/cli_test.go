package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_NoArgsPrintsUsageAndExits(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_MissingCompositionFails(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"manifests/"}, out)
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "-composition")
}

func TestParse_PositionalPathAndComposition(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-composition", "vision_pipeline", "manifests/"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "manifests/", cfg.ManifestPath)
	require.Equal(t, "vision_pipeline", cfg.Composition)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"-composition", "x", "-log-format", "xml", "manifests/"}, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-format")
}

func TestParse_UnknownFlagReturnsExitError(t *testing.T) {
	out := &bytes.Buffer{}
	_, _, err := Parse([]string{"--this-is-not-a-valid-flag"}, out)
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}
