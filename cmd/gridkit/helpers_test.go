package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const dashboardLayout = `version: "1.0"
name: dashboard
gap:
  horizontal: {sm: 16}
  vertical: {sm: 8}
children:
  - id: nav
    widths: {sm: 12, md: 3}
    order: {md: 1}
  - id: main
    widths: {md: 9}
  - id: footer
    widths: {md: 6}
    order: {xl: 2}
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
