package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-01-02"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "gridkit 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-01-02")
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	_, _, err := executeCommand("version", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestCommandErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := newCommandError("compute layout", "loading file", cause, "Try again.")

	assert.Equal(t, "Failed to compute layout: loading file\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := newCommandError("compute layout", "loading file", cause, "")
	assert.NotContains(t, bare.Error(), "Suggestion")
}

func TestPreviewCommandInvokesRunner(t *testing.T) {
	original := previewRunner
	t.Cleanup(func() { previewRunner = original })

	var got *previewOptions
	previewRunner = func(ctx context.Context, log *logger.Logger, opts *previewOptions) error {
		got = opts
		return nil
	}

	path := writeLayout(t, dashboardLayout)
	_, _, err := executeCommand("preview", "-f", path, "--watch")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, path, got.file)
	assert.True(t, got.watch)
}

func TestPreviewCommandRejectsMissingFile(t *testing.T) {
	original := previewRunner
	t.Cleanup(func() { previewRunner = original })
	previewRunner = func(context.Context, *logger.Logger, *previewOptions) error {
		t.Fatal("runner should not be called")
		return nil
	}

	_, _, err := executeCommand("preview", "-f", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to start preview")
}
