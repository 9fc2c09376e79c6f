package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

const layoutSuggestion = "Run with a valid layout file; see examples/dashboard.yaml for the format."

func validateLayoutPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("layout file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve layout path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("layout file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("layout path %s is a directory", abs)
	}

	return abs, nil
}

// loadDocument parses and validates a layout file, warning about breakpoint
// names the document references but its table never declares.
func loadDocument(operation, path string, log *logger.Logger) (*config.Document, error) {
	abs, err := validateLayoutPath(path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("resolving layout path %q", path), err, "Check that the file exists and you have permission to read it.")
	}

	doc, err := config.Parse(abs)
	if err != nil {
		log.Error(err, "layout file rejected")
		return nil, newCommandError(operation, fmt.Sprintf("loading %s", abs), err, layoutSuggestion)
	}

	if unknown := doc.UnknownBreakpoints(); len(unknown) > 0 {
		log.WithFields(map[string]any{"breakpoints": unknown}).Warn("layout references undeclared breakpoints; they are ignored")
	}
	log.With("layout", doc.Name).Debug("layout loaded")

	return doc, nil
}
