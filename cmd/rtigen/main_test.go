package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "src", "core", "main.c")
	require.NoError(t, os.MkdirAll(filepath.Dir(srcPath), 0o750))
	require.NoError(t, os.WriteFile(srcPath, []byte("RTI_VLAN_REGISTER_STATIC(&ifx, ALPHA);\n"), 0o600))

	configPath := filepath.Join(dir, "rti_config.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(`
global {
  project_dir = "`+dir+`"
  vlan { auto_vlanid_start = 100 }
}
module "core" {
  path   = "src/core"
  status = "enable"
  output = "generated/core_vlanid.h"
}
`), 0o600))

	return dir, configPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerate_EndToEnd(t *testing.T) {
	t.Parallel()

	dir, configPath := writeProject(t)

	_, err := execute(t, "generate", "-c", configPath, "--log-level", "error")
	require.NoError(t, err)

	header, err := os.ReadFile(filepath.Join(dir, "src", "core", "generated", "core_vlanid.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "#define RTI_VLANID_ALPHA 100")
}

func TestGenerate_DryRun(t *testing.T) {
	t.Parallel()

	dir, configPath := writeProject(t)

	out, err := execute(t, "generate", "-c", configPath, "--dry-run", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "CORE_ALPHA = 100")

	_, statErr := os.Stat(filepath.Join(dir, "src", "core", "generated", "core_vlanid.h"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_MissingConfigFlag(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestGenerate_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, configPath := writeProject(t)

	_, err := execute(t, "generate", "-c", configPath, "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-format")
}

func TestRoot_Help(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "generate")
}
